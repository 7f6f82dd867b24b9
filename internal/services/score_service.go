package services

import (
	"xinli/internal/scoring"
)

// ScoreServiceInterface runs a scorer and enriches the result so the
// client receives a display-ready record it can hold on to until it
// creates an order.
type ScoreServiceInterface interface {
	ScoreMBTI(choices []string) (*scoring.MBTIResult, error)
	ScoreIQ(answers []*int, age int) (*scoring.IQResult, error)
	ScoreCareer(answers []int) (*scoring.CareerResult, error)
}

type ScoreService struct{}

func NewScoreService() ScoreServiceInterface {
	return &ScoreService{}
}

func (s *ScoreService) ScoreMBTI(choices []string) (*scoring.MBTIResult, error) {
	res, err := scoring.ScoreMBTI(choices)
	if err != nil {
		return nil, err
	}
	if err := scoring.EnrichMBTI(res); err != nil {
		return nil, err
	}
	return res, nil
}

func (s *ScoreService) ScoreIQ(answers []*int, age int) (*scoring.IQResult, error) {
	res, err := scoring.ScoreIQ(answers, age)
	if err != nil {
		return nil, err
	}
	if err := scoring.EnrichIQ(res); err != nil {
		return nil, err
	}
	return res, nil
}

func (s *ScoreService) ScoreCareer(answers []int) (*scoring.CareerResult, error) {
	res, err := scoring.ScoreCareer(answers)
	if err != nil {
		return nil, err
	}
	if err := scoring.EnrichCareer(res); err != nil {
		return nil, err
	}
	return res, nil
}
