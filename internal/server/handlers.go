package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/abhisek/ksa/internal/assessment"
	"github.com/abhisek/ksa/internal/phase"
	"github.com/abhisek/ksa/internal/progress"
	"github.com/abhisek/ksa/internal/session"
)

type createSessionRequest struct {
	Name    string   `json:"name"`
	Role    string   `json:"role"`
	Sectors []string `json:"sectors"`

	// Demo starts from the sample user instead of a blank one.
	Demo bool `json:"demo"`
}

type sessionView struct {
	SessionID string                `json:"sessionId"`
	State     string                `json:"state"`
	User      progress.UserProgress `json:"user"`
}

type startRequest struct {
	Sector string `json:"sector" binding:"required"`
}

type answerRequest struct {
	QuestionID *int `json:"questionId" binding:"required"`
	Option     *int `json:"option" binding:"required"`
}

// questionView hides the answer key while the quiz is being taken.
type questionView struct {
	ID      int      `json:"id"`
	Text    string   `json:"text"`
	Options []string `json:"options"`
}

type quizView struct {
	Sector    string         `json:"sector"`
	Phase     phase.Phase    `json:"phase"`
	Questions []questionView `json:"questions"`
}

type scorecardView struct {
	*assessment.Scorecard
	Questions []assessment.Question `json:"questions"`
}

func newQuizView(q *assessment.Quiz) quizView {
	out := quizView{Sector: q.Sector, Phase: q.Phase, Questions: make([]questionView, len(q.Questions))}
	for i, qq := range q.Questions {
		out.Questions[i] = questionView{ID: qq.ID, Text: qq.Text, Options: qq.Options}
	}
	return out
}

func (s *Server) healthz(c *gin.Context) {
	success(c, gin.H{"status": "ok", "sessions": s.manager.Len()})
}

func (s *Server) listPhases(c *gin.Context) {
	success(c, gin.H{"phases": phase.All(), "passThreshold": assessment.PassThreshold, "pointsPerPass": progress.PointsPerPass})
}

func (s *Server) createSession(c *gin.Context) {
	var req createSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body: "+err.Error())
		return
	}

	var user progress.UserProgress
	if req.Demo {
		user = progress.Demo()
	} else {
		if req.Name == "" {
			badRequest(c, "name is required")
			return
		}
		role, err := progress.ParseRole(req.Role)
		if err != nil {
			badRequest(c, err.Error())
			return
		}
		sectors := req.Sectors
		if len(sectors) == 0 {
			sectors = s.cfg.DefaultSectors
		}
		user = progress.New("", req.Name, role, sectors...)
	}

	sess := s.manager.Create(c.Request.Context(), user)
	created(c, sessionView{SessionID: sess.ID(), State: sess.State().String(), User: sess.Progress()})
}

// withSession resolves the :id parameter or answers 404.
func (s *Server) withSession(h func(*gin.Context, *session.Session)) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := s.manager.Get(c.Param("id"))
		if !ok {
			notFound(c, "session not found")
			return
		}
		h(c, sess)
	}
}

func (s *Server) getSession(c *gin.Context, sess *session.Session) {
	success(c, sessionView{SessionID: sess.ID(), State: sess.State().String(), User: sess.Progress()})
}

func (s *Server) deleteSession(c *gin.Context) {
	if !s.manager.Delete(c.Request.Context(), c.Param("id")) {
		notFound(c, "session not found")
		return
	}
	success(c, nil)
}

func (s *Server) startAssessment(c *gin.Context, sess *session.Session) {
	var req startRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "sector is required")
		return
	}

	quiz, err := sess.StartAssessment(c.Request.Context(), req.Sector)
	if err != nil {
		s.sessionError(c, err)
		return
	}
	created(c, newQuizView(quiz))
}

func (s *Server) getAssessment(c *gin.Context, sess *session.Session) {
	quiz := sess.Quiz()
	if quiz == nil {
		s.sessionError(c, session.ErrNoActiveAssessment)
		return
	}
	success(c, gin.H{
		"state":   sess.State().String(),
		"quiz":    newQuizView(quiz),
		"answers": sess.Answers(),
	})
}

func (s *Server) submitAnswer(c *gin.Context, sess *session.Session) {
	var req answerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "questionId and option are required")
		return
	}
	if err := sess.SubmitAnswer(*req.QuestionID, *req.Option); err != nil {
		s.sessionError(c, err)
		return
	}
	success(c, gin.H{"answers": sess.Answers()})
}

func (s *Server) finishAssessment(c *gin.Context, sess *session.Session) {
	sc, err := sess.FinishAssessment(c.Request.Context())
	if err != nil {
		s.sessionError(c, err)
		return
	}
	view := scorecardView{Scorecard: sc}
	if quiz := sess.Quiz(); quiz != nil {
		view.Questions = quiz.Questions
	}
	success(c, view)
}

func (s *Server) acknowledgeResult(c *gin.Context, sess *session.Session) {
	user, err := sess.AcknowledgeResult(c.Request.Context())
	if err != nil {
		s.sessionError(c, err)
		return
	}
	success(c, sessionView{SessionID: sess.ID(), State: sess.State().String(), User: user})
}

func (s *Server) cancelAssessment(c *gin.Context, sess *session.Session) {
	sess.CancelAssessment()
	success(c, nil)
}

// sessionError maps session failures onto HTTP statuses.
func (s *Server) sessionError(c *gin.Context, err error) {
	_ = c.Error(err)
	switch {
	case errors.Is(err, session.ErrInvalidOption):
		badRequest(c, err.Error())
	case errors.Is(err, session.ErrAttemptInProgress),
		errors.Is(err, session.ErrNoActiveAssessment),
		errors.Is(err, session.ErrNoResult),
		errors.Is(err, session.ErrBusy),
		errors.Is(err, session.ErrCancelled):
		fail(c, http.StatusConflict, err.Error())
	case errors.Is(err, session.ErrNoQuestions):
		fail(c, http.StatusServiceUnavailable, "could not generate an assessment, please try again")
	default:
		s.log.Error("unexpected session error", "path", c.Request.URL.Path, "error", err)
		fail(c, http.StatusInternalServerError, "internal server error")
	}
}
