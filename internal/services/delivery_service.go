package services

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"

	"xinli/internal/scoring"
	"xinli/pkg/utils"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type DeliveryServiceInterface interface {
	// SendReport enriches the raw result payload, renders the PDF
	// report and emails it to the destination address.
	SendReport(ctx context.Context, to, testType string, resultData json.RawMessage, orderID string) error
}

type DeliveryService struct {
	mail    IMailService
	reports ReportServiceInterface
	appName string
}

func NewDeliveryService(mail IMailService, reports ReportServiceInterface, appName string) DeliveryServiceInterface {
	return &DeliveryService{
		mail:    mail,
		reports: reports,
		appName: appName,
	}
}

func (d *DeliveryService) SendReport(ctx context.Context, to, testType string, resultData json.RawMessage, orderID string) error {
	if d.mail == nil || !d.mail.Configured() {
		return utils.ErrMailNotConfigured
	}
	if !emailPattern.MatchString(to) {
		return fmt.Errorf("%w: invalid email address %q", utils.ErrInvalidInput, to)
	}

	record, err := scoring.ParseAndEnrich(testType, resultData)
	if err != nil {
		return err
	}

	pdfBytes, err := d.reports.RenderReport(testType, record)
	if err != nil {
		return err
	}

	testName := TestName(testType)
	subject := fmt.Sprintf("你的%s测试报告 — %s", testName, d.appName)
	htmlBody, textBody, err := RenderReportMail(d.appName, testName, summaryHTML(testType, record))
	if err != nil {
		return fmt.Errorf("%w: %v", utils.ErrDeliveryFailed, err)
	}

	attachmentName := fmt.Sprintf("xinli-report-%s.pdf", testType)
	if err := d.mail.SendReportMail(to, subject, htmlBody, textBody, attachmentName, pdfBytes); err != nil {
		return fmt.Errorf("%w: %v", utils.ErrDeliveryFailed, err)
	}
	return nil
}

// summaryHTML builds the short per-test summary block embedded in the
// delivery email above the attachment note.
func summaryHTML(testType string, record interface{}) string {
	switch r := record.(type) {
	case *scoring.MBTIResult:
		return fmt.Sprintf(
			"<p><strong>人格类型：</strong>%s - %s</p><p><strong>特征描述：</strong>%s</p>",
			r.Type, r.TypeName, r.Epithet)
	case *scoring.IQResult:
		return fmt.Sprintf(
			"<p><strong>IQ分数：</strong>%d</p><p><strong>智力等级：</strong>%s</p><p><strong>正确题数：</strong>%d/%d</p>",
			r.Score, r.Level, r.CorrectCount, scoring.IQQuestionCount)
	case *scoring.CareerResult:
		return fmt.Sprintf(
			"<p><strong>职业性格类型：</strong>%s - %s</p><p><strong>推荐职业数量：</strong>%d个</p>",
			r.MBTIType, r.MBTITypeName, len(r.Careers))
	default:
		return ""
	}
}
