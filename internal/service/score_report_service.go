package service

import (
	"encoding/json"
	"strconv"

	"github.com/jinzhu/copier"
	"github.com/lshigami/examprep/config"
	"github.com/lshigami/examprep/internal/dto"
	"github.com/lshigami/examprep/internal/exam"
	"github.com/lshigami/examprep/internal/model"
	"github.com/rs/zerolog/log"
)

// ScoreReportService turns raw results into what users see: a two-decimal
// score and a pass/fail verdict against the configured pass mark.
type ScoreReportService interface {
	Report(result exam.Result) dto.ScoreReportDTO
	FromRecord(record model.ExamResult) dto.ExamResultDTO
	Passed(scorePercent float64) bool
}

type scoreReportService struct {
	passMark float64
}

func NewScoreReportService(cfg *config.Config) ScoreReportService {
	passMark := cfg.Exam.PassMark
	if passMark < 0 || passMark > 100 {
		log.Warn().Float64("pass_mark", passMark).Msg("Pass mark out of range, using 60")
		passMark = 60
	}
	return &scoreReportService{passMark: passMark}
}

// DisplayScore renders a percentage with two decimals. The stored value is
// never rounded.
func DisplayScore(scorePercent float64) string {
	return strconv.FormatFloat(scorePercent, 'f', 2, 64)
}

func (s *scoreReportService) Passed(scorePercent float64) bool {
	return scorePercent >= s.passMark
}

func (s *scoreReportService) Report(result exam.Result) dto.ScoreReportDTO {
	ids := result.IncorrectQuestionIDs
	if ids == nil {
		ids = []uint{}
	}
	return dto.ScoreReportDTO{
		SessionID:            result.SessionID,
		ScorePercent:         result.ScorePercent,
		DisplayScore:         DisplayScore(result.ScorePercent),
		CorrectCount:         result.CorrectCount,
		IncorrectCount:       result.IncorrectCount(),
		TotalCount:           result.TotalCount,
		IncorrectQuestionIDs: ids,
		DurationSeconds:      result.DurationSeconds,
		Trigger:              string(result.Trigger),
		PassMark:             s.passMark,
		Passed:               s.Passed(result.ScorePercent),
	}
}

func (s *scoreReportService) FromRecord(record model.ExamResult) dto.ExamResultDTO {
	var out dto.ExamResultDTO
	if err := copier.Copy(&out, &record); err != nil {
		log.Error().Err(err).Uint("resultID", record.ID).Msg("FromRecord: Error copying exam result to DTO")
	}
	out.DisplayScore = DisplayScore(record.ScorePercent)
	out.Passed = s.Passed(record.ScorePercent)

	out.IncorrectQuestionIDs = []uint{}
	if record.IncorrectQuestionIDs != "" {
		if err := json.Unmarshal([]byte(record.IncorrectQuestionIDs), &out.IncorrectQuestionIDs); err != nil {
			log.Warn().Err(err).Uint("resultID", record.ID).Msg("FromRecord: Stored incorrect question ids are unreadable")
			out.IncorrectQuestionIDs = []uint{}
		}
	}
	return out
}
