package server

import (
	"bytes"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/julianstephens/daylog/internal/auth"
	"github.com/julianstephens/daylog/internal/constants"
	"github.com/julianstephens/daylog/internal/export"
	"github.com/julianstephens/daylog/internal/journal"
	"github.com/julianstephens/daylog/internal/logger"
	"github.com/julianstephens/daylog/internal/models"
	"github.com/julianstephens/daylog/internal/utils"
	"github.com/julianstephens/daylog/internal/validation"
)

type loginRequest struct {
	PIN string `json:"pin" binding:"required"`
}

type morningRequest struct {
	Intentions []string `json:"intentions"`
	Mood       string   `json:"mood"`
}

type eveningRequest struct {
	Reflection string `json:"reflection"`
	TopWin     string `json:"top_win"`
	Mood       string `json:"mood"`
}

type decisionRequest struct {
	Date      string `json:"decision_date"`
	Title     string `json:"title"`
	Context   string `json:"context"`
	Choice    string `json:"choice"`
	Reasoning string `json:"reasoning"`
	Outcome   string `json:"outcome"`
	Tags      string `json:"tags"`
}

type entryRequest struct {
	Date string `json:"entry_date"`
	Type string `json:"type"`
	Text string `json:"text"`
	Tags string `json:"tags"`
}

// respondError maps service errors onto status codes.
func respondError(c *gin.Context, err error) {
	var verr *validation.Error
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "conflicts": verr.Result.Conflicts})
	case errors.Is(err, models.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	default:
		logger.Error("Request failed", "path", c.FullPath(), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

func queryLimit(c *gin.Context) int {
	n, err := strconv.Atoi(c.Query("limit"))
	if err != nil {
		return 0
	}
	return n
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "version": constants.Version})
}

func (s *Server) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	settings, err := s.svc.Settings()
	if err != nil {
		respondError(c, err)
		return
	}
	if err := auth.VerifyPIN(settings.PinHash, req.PIN); err != nil {
		if errors.Is(err, auth.ErrNoPIN) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "no PIN configured"})
			return
		}
		logger.Warn("Login failed", "ip", c.ClientIP())
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid PIN"})
		return
	}

	tok, err := s.issuer.Issue()
	if err != nil {
		respondError(c, err)
		return
	}
	logger.Info("Login succeeded", "ip", c.ClientIP())
	c.JSON(http.StatusOK, gin.H{"token": tok})
}

func (s *Server) dashboard(c *gin.Context) {
	day := c.Query("today")
	if day == "" {
		summary, err := s.svc.Dashboard()
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, summary)
		return
	}

	today, err := utils.ParseDate(day)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "today must be YYYY-MM-DD"})
		return
	}
	summary, err := s.svc.DashboardAt(today)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (s *Server) listRecords(c *gin.Context) {
	records, err := s.svc.History(queryLimit(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, records)
}

func (s *Server) getRecord(c *gin.Context) {
	r, found, err := s.svc.Record(c.Param("date"))
	if err != nil {
		respondError(c, err)
		return
	}
	if !found {
		respondError(c, models.ErrNotFound)
		return
	}
	c.JSON(http.StatusOK, r)
}

func (s *Server) saveMorning(c *gin.Context) {
	var req morningRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	r, err := s.svc.SaveMorning(c.Param("date"), req.Intentions, req.Mood)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, r)
}

func (s *Server) saveEvening(c *gin.Context) {
	var req eveningRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	r, err := s.svc.SaveEvening(c.Param("date"), req.Reflection, req.TopWin, req.Mood)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, r)
}

func (s *Server) listDecisions(c *gin.Context) {
	includeDeleted, _ := strconv.ParseBool(c.Query("include_deleted"))
	decisions, err := s.svc.Decisions(queryLimit(c), includeDeleted)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, decisions)
}

func (s *Server) addDecision(c *gin.Context) {
	var req decisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	d, err := s.svc.AddDecision(journal.DecisionInput(req))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, d)
}

func (s *Server) getDecision(c *gin.Context) {
	d, err := s.svc.Decision(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, d)
}

func (s *Server) deleteDecision(c *gin.Context) {
	if err := s.svc.DeleteDecision(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) restoreDecision(c *gin.Context) {
	if err := s.svc.RestoreDecision(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) listEntries(c *gin.Context) {
	entries, err := s.svc.Entries(queryLimit(c), c.Query("type"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

func (s *Server) addEntry(c *gin.Context) {
	var req entryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	e, err := s.svc.AddEntry(journal.EntryInput(req))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, e)
}

func (s *Server) deleteEntry(c *gin.Context) {
	if err := s.svc.DeleteEntry(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) exportMarkdown(c *gin.Context) {
	s.writeExport(c, export.FormatMarkdown, "text/markdown; charset=utf-8")
}

func (s *Server) exportJSON(c *gin.Context) {
	s.writeExport(c, export.FormatJSON, "application/json; charset=utf-8")
}

func (s *Server) writeExport(c *gin.Context, format export.Format, contentType string) {
	snap, err := s.svc.Snapshot()
	if err != nil {
		respondError(c, err)
		return
	}
	var buf bytes.Buffer
	if err := export.Write(&buf, format, snap, time.Now()); err != nil {
		respondError(c, err)
		return
	}
	c.Data(http.StatusOK, contentType, buf.Bytes())
}
