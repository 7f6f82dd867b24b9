package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"xinli/internal/models/request_models"
	"xinli/internal/services"
	"xinli/pkg/utils"
)

type ScoreController struct {
	scoreService services.ScoreServiceInterface
}

func NewScoreController(scoreService services.ScoreServiceInterface) *ScoreController {
	return &ScoreController{scoreService: scoreService}
}

func (s *ScoreController) ScoreMBTI(c *gin.Context) {
	var req request_models.MBTIScoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	res, err := s.scoreService.ScoreMBTI(req.Choices)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, res, "Scored mbti test")
}

func (s *ScoreController) ScoreIQ(c *gin.Context) {
	var req request_models.IQScoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	res, err := s.scoreService.ScoreIQ(req.Answers, req.Age)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, res, "Scored iq test")
}

func (s *ScoreController) ScoreCareer(c *gin.Context) {
	var req request_models.CareerScoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	res, err := s.scoreService.ScoreCareer(req.Answers)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, res, "Scored career test")
}
