// Package api provides the REST API server for harmony
package api

import (
	"errors"
	"fmt"
	"mime"
	"net/http"
	"time"

	"github.com/Southclaws/fault"
	"github.com/Southclaws/fault/fmsg"
	"github.com/Southclaws/fault/ftag"
	"github.com/gin-gonic/gin"
	"github.com/james-see/harmony/pkg/config"
	"github.com/james-see/harmony/pkg/export"
	"github.com/james-see/harmony/pkg/theory"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Harmony API
// @version 1.0
// @description API for parsing notes, building diatonic scales and identifying modes
// @host localhost:8080
// @BasePath /api/v1

// Server serves the harmony API
type Server struct {
	cfg config.Config
	log *logrus.Logger
}

// NewServer creates a Server
func NewServer(cfg config.Config, log *logrus.Logger) *Server {
	return &Server{cfg: cfg, log: log}
}

// Router builds the gin engine with all routes
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(s.requestLogger())
	r.Use(s.corsMiddleware())

	// Health check
	r.GET("/health", healthCheck)

	// API v1 routes
	v1 := r.Group("/api/v1")
	{
		v1.GET("/health", healthCheck)
		v1.GET("/modes", listModes)
		v1.GET("/notes/:note", s.handleNote)
		v1.GET("/scale", s.handleScale)
		v1.GET("/scale/midi", s.handleScaleMIDI)
		v1.POST("/identify", s.handleIdentify)
		v1.POST("/distance", s.handleDistance)
	}

	// Swagger docs
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// Start listens on the configured port
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.cfg.Server.Port)
	s.log.WithField("addr", addr).Info("starting API server")
	return s.Router().Run(addr)
}

// StartServer starts the API server with the given configuration
func StartServer(cfg config.Config) error {
	return NewServer(cfg, cfg.NewLogger()).Start()
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		entry := s.log.WithFields(logrus.Fields{
			"method":  c.Request.Method,
			"path":    c.Request.URL.Path,
			"status":  c.Writer.Status(),
			"latency": time.Since(start),
		})
		if len(c.Errors) > 0 {
			entry.Warn(c.Errors.String())
			return
		}
		entry.Debug("request")
	}
}

func (s *Server) corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", s.cfg.Server.AllowOrigin)
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// respondError maps tagged errors to a status code
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch ftag.Get(err) {
	case ftag.InvalidArgument:
		status = http.StatusBadRequest
	}
	_ = c.Error(err)

	body := gin.H{"error": err.Error()}
	if issue := fmsg.GetIssue(err); issue != "" {
		body["issue"] = issue
	}
	c.JSON(status, body)
}

// invalid tags a client mistake
func invalid(err error, internal, issue string) error {
	return fault.Wrap(err,
		fmsg.WithDesc(internal, issue),
		ftag.With(ftag.InvalidArgument))
}

// healthCheck godoc
// @Summary Health check endpoint
// @Description Returns the health status of the API
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "harmony",
	})
}

// ModeInfo describes one mode
type ModeInfo struct {
	Name      theory.Mode `json:"name"`
	Intervals []int       `json:"intervals"`
}

// listModes godoc
// @Summary List modes
// @Description Returns the seven diatonic modes with their interval patterns
// @Tags info
// @Produce json
// @Success 200 {object} map[string][]ModeInfo
// @Router /api/v1/modes [get]
func listModes(c *gin.Context) {
	modes := make([]ModeInfo, 0, theory.ScaleLength)
	for _, m := range theory.Modes() {
		modes = append(modes, ModeInfo{Name: m, Intervals: m.IntervalPattern()})
	}
	c.JSON(http.StatusOK, gin.H{"modes": modes})
}

// NoteInfo describes a parsed note
type NoteInfo struct {
	Note       theory.Note `json:"note"`
	Name       string      `json:"name"`
	Accidental string      `json:"accidental"`
	Offset     int         `json:"offset"`
	Octave     int         `json:"octave"`
	Key        *uint8      `json:"key,omitempty"`
}

// handleNote godoc
// @Summary Parse a note
// @Description Parses a note such as F#5 (URL-encode '#' as %23)
// @Tags notes
// @Produce json
// @Param note path string true "Note text"
// @Success 200 {object} NoteInfo
// @Failure 400 {object} map[string]string
// @Router /api/v1/notes/{note} [get]
func (s *Server) handleNote(c *gin.Context) {
	n, err := theory.ParseNote(c.Param("note"))
	if err != nil {
		respondError(c, invalid(err, "parse note", "The note must look like C4, F#3 or Bb-1."))
		return
	}

	info := NoteInfo{
		Note:       n,
		Name:       n.Name.String(),
		Accidental: n.Accidental.String(),
		Offset:     n.Accidental.Offset(),
		Octave:     n.Octave,
	}
	if key, err := export.KeyNumber(n); err == nil {
		info.Key = &key
	}
	c.JSON(http.StatusOK, info)
}

// scaleFromQuery builds the scale named by the tonic and mode query parameters
func (s *Server) scaleFromQuery(c *gin.Context) (theory.DiatonicScale, error) {
	tonic, err := theory.ParseNote(c.Query("tonic"))
	if err != nil {
		return theory.DiatonicScale{}, invalid(err, "parse tonic", "The tonic must look like C4, F#3 or Bb-1.")
	}

	mode := s.cfg.DefaultMode()
	if name := c.Query("mode"); name != "" {
		if mode, err = theory.ParseMode(name); err != nil {
			return theory.DiatonicScale{}, invalid(err, "parse mode", "Unknown mode.")
		}
	}

	if err := theory.CheckSpelling(tonic, mode); err != nil {
		return theory.DiatonicScale{}, invalid(err, "spell scale", "That tonic needs more than double accidentals in this mode.")
	}
	return theory.NewDiatonicScale(tonic, mode), nil
}

// handleScale godoc
// @Summary Build a diatonic scale
// @Description Returns the seven notes of the mode built on the tonic
// @Tags scales
// @Produce json
// @Param tonic query string true "Tonic note"
// @Param mode query string false "Mode (default from config)"
// @Success 200 {object} theory.DiatonicScale
// @Failure 400 {object} map[string]string
// @Router /api/v1/scale [get]
func (s *Server) handleScale(c *gin.Context) {
	scale, err := s.scaleFromQuery(c)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, scale)
}

// handleScaleMIDI godoc
// @Summary Download a scale as MIDI
// @Description Returns a Standard MIDI File playing the scale
// @Tags scales
// @Produce audio/midi
// @Param tonic query string true "Tonic note"
// @Param mode query string false "Mode (default from config)"
// @Success 200 {file} binary
// @Failure 400 {object} map[string]string
// @Router /api/v1/scale/midi [get]
func (s *Server) handleScaleMIDI(c *gin.Context) {
	scale, err := s.scaleFromQuery(c)
	if err != nil {
		respondError(c, err)
		return
	}

	data, err := export.NewMIDIWriter(s.cfg.MIDIOptions()).GenerateMIDI(scale)
	if err != nil {
		if errors.Is(err, export.ErrKeyOutOfRange) {
			err = invalid(err, "render MIDI", "The scale leaves the MIDI key range.")
		}
		respondError(c, err)
		return
	}

	c.Header("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{
		"filename": fmt.Sprintf("%s-%s.mid", scale.Tonic, scale.Mode),
	}))
	c.Data(http.StatusOK, "audio/midi", data)
}

// IdentifyRequest is the body of an identify call
type IdentifyRequest struct {
	Notes []string `json:"notes" binding:"required"`
}

// handleIdentify godoc
// @Summary Identify a mode
// @Description Identifies the mode of a sequence of seven notes
// @Tags scales
// @Accept json
// @Produce json
// @Param body body IdentifyRequest true "Seven notes"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Router /api/v1/identify [post]
func (s *Server) handleIdentify(c *gin.Context) {
	var req IdentifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, invalid(err, "bind identify request", "Send {\"notes\": [...]}."))
		return
	}

	notes, err := theory.ParseNotes(req.Notes)
	if err != nil {
		respondError(c, invalid(err, "parse notes", "Every note must look like C4, F#3 or Bb-1."))
		return
	}

	mode, err := theory.IdentifyMode(notes)
	if err != nil {
		respondError(c, invalid(err, "identify mode", "Give seven ascending notes of a diatonic mode."))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"mode":      mode,
		"intervals": theory.Intervals(notes),
	})
}

// DistanceRequest is the body of a distance call
type DistanceRequest struct {
	From string `json:"from" binding:"required"`
	To   string `json:"to" binding:"required"`
}

// handleDistance godoc
// @Summary Half-step distance
// @Description Returns the signed number of half steps from one note to another
// @Tags notes
// @Accept json
// @Produce json
// @Param body body DistanceRequest true "Notes"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Router /api/v1/distance [post]
func (s *Server) handleDistance(c *gin.Context) {
	var req DistanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, invalid(err, "bind distance request", "Send {\"from\": ..., \"to\": ...}."))
		return
	}

	from, err := theory.ParseNote(req.From)
	if err != nil {
		respondError(c, invalid(err, "parse from", "The from note must look like C4, F#3 or Bb-1."))
		return
	}
	to, err := theory.ParseNote(req.To)
	if err != nil {
		respondError(c, invalid(err, "parse to", "The to note must look like C4, F#3 or Bb-1."))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"from":   from,
		"to":     to,
		"hsteps": from.DistHsteps(to),
		"steps":  from.Name.Dist(to.Name),
	})
}
