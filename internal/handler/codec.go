package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Samreen555/huffman"
	"github.com/Samreen555/huffman/internal/repo"
	"github.com/Samreen555/huffman/internal/service"
)

type CodecHandler struct {
	svc *service.CodecService
}

func NewCodecHandler(s *service.CodecService) *CodecHandler {
	return &CodecHandler{svc: s}
}

type encodeReq struct {
	Text string `json:"text" binding:"required"`
}

type decodeReq struct {
	Encoded string `json:"encoded" binding:"required"`
}

type sessionResp struct {
	ID           string            `json:"id"`
	Frequencies  map[string]int    `json:"frequencies"`
	Codes        map[string]string `json:"codes"`
	Encoded      string            `json:"encoded"`
	EncodedBits  int               `json:"encoded_bits"`
	OriginalBits int               `json:"original_bits"`
	Ratio        float64           `json:"ratio"`
	Verified     bool              `json:"verified"`
}

func toSessionResp(sess *repo.Session) sessionResp {
	c := sess.Codec
	freqs := make(map[string]int, c.Frequencies().Len())
	codes := make(map[string]string, c.Frequencies().Len())
	for _, sym := range c.Frequencies().Symbols() {
		key := string(rune(sym))
		freqs[key] = c.Frequencies().Of(sym)
		codes[key] = string(c.Codes()[sym])
	}
	return sessionResp{
		ID:           sess.ID,
		Frequencies:  freqs,
		Codes:        codes,
		Encoded:      c.Encoded(),
		EncodedBits:  c.EncodedBits(),
		OriginalBits: c.OriginalBits(),
		Ratio:        c.Ratio(),
		Verified:     c.Verify(),
	}
}

func (h *CodecHandler) Create(c *gin.Context) {
	var req encodeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	sess, err := h.svc.Create(req.Text)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, toSessionResp(sess))
}

func (h *CodecHandler) GetByID(c *gin.Context) {
	sess, err := h.svc.GetByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, toSessionResp(sess))
}

func (h *CodecHandler) Decode(c *gin.Context) {
	var req decodeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	text, err := h.svc.Decode(c.Param("id"), req.Encoded)
	if err != nil {
		switch {
		case errors.Is(err, repo.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		case errors.Is(err, huffman.ErrTruncatedStream), errors.Is(err, huffman.ErrInvalidBit):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"text": text})
}
