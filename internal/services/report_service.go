package services

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"

	"xinli/internal/scoring"
	"xinli/pkg/utils"
)

// ReportConfig controls PDF rendering. FontPath points at a TTF with
// CJK coverage; without it the renderer falls back to the latin core
// font, which keeps layout intact but cannot draw Chinese glyphs.
type ReportConfig struct {
	AppName  string
	FontPath string
}

type ReportServiceInterface interface {
	// RenderReport renders an enriched result record into a paginated
	// PDF document.
	RenderReport(testType string, record interface{}) ([]byte, error)
}

type ReportService struct {
	cfg ReportConfig
}

func NewReportService(cfg ReportConfig) ReportServiceInterface {
	return &ReportService{cfg: cfg}
}

const reportFontFamily = "report"

func (s *ReportService) newDocument(title string) (*fpdf.Fpdf, string) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(title, true)

	family := "Helvetica"
	if s.cfg.FontPath != "" {
		pdf.AddUTF8Font(reportFontFamily, "", s.cfg.FontPath)
		family = reportFontFamily
	}

	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont(family, "", 9)
		pdf.SetTextColor(156, 163, 175)
		pdf.CellFormat(0, 10, fmt.Sprintf("- %d -", pdf.PageNo()), "", 0, "C", false, 0, "")
	})

	return pdf, family
}

func (s *ReportService) RenderReport(testType string, record interface{}) ([]byte, error) {
	switch r := record.(type) {
	case *scoring.MBTIResult:
		return s.renderMBTI(r)
	case *scoring.IQResult:
		return s.renderIQ(r)
	case *scoring.CareerResult:
		return s.renderCareer(r)
	default:
		return nil, fmt.Errorf("%w: no report layout for test type %q", utils.ErrInvalidInput, testType)
	}
}

func (s *ReportService) renderMBTI(r *scoring.MBTIResult) ([]byte, error) {
	pdf, family := s.newDocument("MBTI人格测试报告")

	s.cover(pdf, family, "MBTI人格测试报告", r.Type, fmt.Sprintf("%s · %s", r.TypeName, r.Epithet))
	s.paragraph(pdf, family, "类型解读", r.Description)

	s.sectionTitle(pdf, family, "维度得分")
	pdf.SetFont(family, "", 11)
	for _, letter := range []string{"E", "I", "S", "N", "T", "F", "J", "P"} {
		pdf.SetTextColor(55, 65, 81)
		pdf.CellFormat(120, 8, scoring.LetterMeaning(letter), "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 8, fmt.Sprintf("%d", r.Counts[letter]), "", 1, "R", false, 0, "")
	}
	pdf.Ln(4)

	s.bulletSection(pdf, family, "总体特征", r.GeneralTraits)
	s.bulletSection(pdf, family, "优势", r.Strengths)
	s.bulletSection(pdf, family, "给你的建议", r.TenRulesToLive)

	return s.output(pdf)
}

func (s *ReportService) renderIQ(r *scoring.IQResult) ([]byte, error) {
	pdf, family := s.newDocument("IQ智力测试报告")

	s.cover(pdf, family, "IQ智力测试报告", fmt.Sprintf("%d", r.Score), fmt.Sprintf("智力等级：%s", r.Level))
	s.paragraph(pdf, family, "结果解读", r.Description)

	s.sectionTitle(pdf, family, "测试详情")
	pdf.SetFont(family, "", 11)
	pdf.SetTextColor(55, 65, 81)
	rows := [][2]string{
		{"正确题数", fmt.Sprintf("%d / %d", r.CorrectCount, scoring.IQQuestionCount)},
		{"测试年龄", fmt.Sprintf("%d岁", r.Age)},
	}
	if t := utils.FromUnixSecondsCN(r.Timestamp); !t.IsZero() {
		rows = append(rows, [2]string{"测试时间", t.Format("2006-01-02 15:04")})
	}
	for _, row := range rows {
		pdf.CellFormat(60, 8, row[0], "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 8, row[1], "", 1, "L", false, 0, "")
	}

	return s.output(pdf)
}

func (s *ReportService) renderCareer(r *scoring.CareerResult) ([]byte, error) {
	pdf, family := s.newDocument("职业性格测试报告")

	s.cover(pdf, family, "职业性格测试报告", r.MBTIType, r.MBTITypeName)

	s.sectionTitle(pdf, family, "五因素人格得分")
	pdf.SetFont(family, "", 11)
	for _, score := range r.FFMScores {
		pdf.SetTextColor(55, 65, 81)
		pdf.CellFormat(40, 9, score.Trait, "", 0, "L", false, 0, "")
		// Simple bar chart: a filled box scaled to the percentage.
		x, y := pdf.GetXY()
		pdf.SetFillColor(124, 58, 237)
		pdf.Rect(x, y+2, float64(score.Percentage), 5, "F")
		pdf.SetXY(x+105, y)
		pdf.CellFormat(0, 9, fmt.Sprintf("%d%%", score.Percentage), "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	s.bulletSection(pdf, family, "推荐职业", r.Careers)

	return s.output(pdf)
}

// ------------------- Layout helpers -------------------

func (s *ReportService) cover(pdf *fpdf.Fpdf, family, title, metric, subtitle string) {
	pdf.AddPage()

	pdf.SetFont(family, "", 12)
	pdf.SetTextColor(124, 58, 237)
	pdf.CellFormat(0, 10, s.cfg.AppName, "", 1, "C", false, 0, "")
	pdf.Ln(8)

	pdf.SetFont(family, "", 22)
	pdf.SetTextColor(17, 24, 39)
	pdf.CellFormat(0, 14, title, "", 1, "C", false, 0, "")
	pdf.Ln(10)

	pdf.SetFont(family, "", 48)
	pdf.SetTextColor(79, 70, 229)
	pdf.CellFormat(0, 24, metric, "", 1, "C", false, 0, "")

	if subtitle != "" {
		pdf.SetFont(family, "", 14)
		pdf.SetTextColor(107, 114, 128)
		pdf.CellFormat(0, 10, subtitle, "", 1, "C", false, 0, "")
	}
	pdf.Ln(12)
}

func (s *ReportService) sectionTitle(pdf *fpdf.Fpdf, family, title string) {
	pdf.SetFont(family, "", 15)
	pdf.SetTextColor(79, 70, 229)
	pdf.CellFormat(0, 10, title, "", 1, "L", false, 0, "")
	pdf.Ln(2)
}

func (s *ReportService) paragraph(pdf *fpdf.Fpdf, family, title, body string) {
	if body == "" {
		return
	}
	s.sectionTitle(pdf, family, title)
	pdf.SetFont(family, "", 11)
	pdf.SetTextColor(55, 65, 81)
	pdf.MultiCell(0, 7, body, "", "L", false)
	pdf.Ln(4)
}

func (s *ReportService) bulletSection(pdf *fpdf.Fpdf, family, title string, items []string) {
	if len(items) == 0 {
		return
	}
	s.sectionTitle(pdf, family, title)
	pdf.SetFont(family, "", 11)
	pdf.SetTextColor(55, 65, 81)
	for _, item := range items {
		pdf.MultiCell(0, 7, "· "+item, "", "L", false)
	}
	pdf.Ln(4)
}

func (s *ReportService) output(pdf *fpdf.Fpdf) ([]byte, error) {
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
