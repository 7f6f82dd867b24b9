package services

import (
	"bytes"
	"errors"
	"testing"

	"xinli/internal/scoring"
	"xinli/pkg/utils"
)

func testReportService() ReportServiceInterface {
	return NewReportService(ReportConfig{AppName: "心理测试平台"})
}

func enrichedMBTI(t *testing.T) *scoring.MBTIResult {
	t.Helper()
	choices := make([]string, scoring.MBTIQuestionCount)
	for i := range choices {
		choices[i] = "A"
	}
	res, err := scoring.ScoreMBTI(choices)
	if err != nil {
		t.Fatalf("ScoreMBTI: %v", err)
	}
	if err := scoring.EnrichMBTI(res); err != nil {
		t.Fatalf("EnrichMBTI: %v", err)
	}
	return res
}

func assertPDF(t *testing.T, data []byte) {
	t.Helper()
	if len(data) == 0 {
		t.Fatal("empty document")
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Errorf("output does not start with %%PDF header")
	}
}

func TestRenderMBTIReport(t *testing.T) {
	data, err := testReportService().RenderReport("mbti", enrichedMBTI(t))
	if err != nil {
		t.Fatalf("RenderReport: %v", err)
	}
	assertPDF(t, data)
}

func TestRenderIQReport(t *testing.T) {
	r := &scoring.IQResult{Score: 102, CorrectCount: 45, Age: 25, Timestamp: 1700000000}
	if err := scoring.EnrichIQ(r); err != nil {
		t.Fatalf("EnrichIQ: %v", err)
	}
	data, err := testReportService().RenderReport("iq", r)
	if err != nil {
		t.Fatalf("RenderReport: %v", err)
	}
	assertPDF(t, data)
}

func TestRenderCareerReport(t *testing.T) {
	r, err := scoring.ScoreCareer([]int{1, 2, 3, 4, 5, 5, 4, 3, 2, 1})
	if err != nil {
		t.Fatalf("ScoreCareer: %v", err)
	}
	if err := scoring.EnrichCareer(r); err != nil {
		t.Fatalf("EnrichCareer: %v", err)
	}
	data, err := testReportService().RenderReport("career", r)
	if err != nil {
		t.Fatalf("RenderReport: %v", err)
	}
	assertPDF(t, data)
}

func TestRenderReportUnknownRecord(t *testing.T) {
	if _, err := testReportService().RenderReport("mbti", struct{}{}); !errors.Is(err, utils.ErrInvalidInput) {
		t.Errorf("err = %v, want ErrInvalidInput", err)
	}
}
