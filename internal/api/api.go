// Package api exposes the solver core over HTTP as stateless JSON
// endpoints. Each request triggers one self-contained computation pass;
// refresh cadence is the client's business.
package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/svemuri/ghatika"
	"github.com/svemuri/ghatika/internal/config"
	"github.com/svemuri/ghatika/internal/panchang"
)

// RegisterRoutes attaches the API endpoints to r. cfg supplies the default
// observer for requests that omit lat/lon/tz.
func RegisterRoutes(r *gin.Engine, cfg *config.Config) {
	h := &handlers{cfg: cfg}

	api := r.Group("/api")
	api.GET("/sunrise", h.sunrise)
	api.GET("/ancient", h.ancient)
	api.GET("/sky", h.sky)
	api.GET("/transit", h.transit)
	api.GET("/solve", h.solve)
	api.GET("/panchang", h.panchang)
}

type handlers struct {
	cfg *config.Config
}

func (h *handlers) sunrise(c *gin.Context) {
	q, err := parseQuery(c, h.cfg)
	if err != nil {
		badRequest(c, err)
		return
	}

	rise, err := ghatika.FindSunrise(q.loc, q.at)
	if err != nil {
		internalError(c, err)
		return
	}
	set, err := ghatika.FindSunset(q.loc, q.at)
	if err != nil {
		internalError(c, err)
		return
	}

	resp := gin.H{"sunrise": rise, "sunset": set}
	if rise.OK && set.OK {
		resp["daylight_hours"] = set.Time.Sub(rise.Time).Hours()
	}
	c.JSON(http.StatusOK, resp)
}

func (h *handlers) ancient(c *gin.Context) {
	q, err := parseQuery(c, h.cfg)
	if err != nil {
		badRequest(c, err)
		return
	}

	at, err := ghatika.AncientAt(q.loc, q.at)
	if errors.Is(err, ghatika.ErrNoSunrise) {
		c.JSON(http.StatusOK, gin.H{"found": false})
		return
	}
	if err != nil {
		internalError(c, err)
		return
	}

	ghati, ghatiFrac := ghatika.Split(at.Ghati)
	muhurta, muhurtaFrac := ghatika.Split(at.Muhurta)
	yama, yamaFrac := ghatika.Split(at.Yama)
	c.JSON(http.StatusOK, gin.H{
		"found":   true,
		"reading": at,
		"parts": gin.H{
			"ghati":        ghati,
			"ghati_frac":   ghatiFrac,
			"muhurta":      muhurta,
			"muhurta_frac": muhurtaFrac,
			"yama":         yama,
			"yama_frac":    yamaFrac,
		},
	})
}

func (h *handlers) sky(c *gin.Context) {
	q, err := parseQuery(c, h.cfg)
	if err != nil {
		badRequest(c, err)
		return
	}

	stars, err := ghatika.Sky(q.loc, q.at)
	if err != nil {
		internalError(c, err)
		return
	}
	lst, err := ghatika.SiderealTime(q.loc, q.at)
	if err != nil {
		internalError(c, err)
		return
	}
	sun, err := ghatika.SunAltAz(q.loc, q.at)
	if err != nil {
		internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"at":             q.at,
		"sidereal_hours": lst,
		"sun":            sun,
		"stars":          stars,
	})
}

func (h *handlers) transit(c *gin.Context) {
	q, err := parseQuery(c, h.cfg)
	if err != nil {
		badRequest(c, err)
		return
	}
	star, err := requireStar(c)
	if err != nil {
		badRequest(c, err)
		return
	}

	at, err := ghatika.MeridianTransitOn(q.loc, star, q.at)
	if err != nil {
		internalError(c, err)
		return
	}
	pos, err := ghatika.StarAltAz(q.loc, star, at)
	if err != nil {
		internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"star": star.Name, "transit": at, "pos": pos})
}

func (h *handlers) solve(c *gin.Context) {
	q, err := parseQuery(c, h.cfg)
	if err != nil {
		badRequest(c, err)
		return
	}
	star, err := requireStar(c)
	if err != nil {
		badRequest(c, err)
		return
	}
	target, tol, withAz, err := parseSolveParams(c)
	if err != nil {
		badRequest(c, err)
		return
	}

	w := ghatika.DayWindow(q.at)
	var ts []time.Time
	if withAz {
		ts, err = ghatika.SolvePosition(q.loc, star, target, w, tol)
	} else {
		ts, err = ghatika.SolveAltitude(q.loc, star, target.Alt, w, tol)
	}
	if err != nil {
		internalError(c, err)
		return
	}
	if ts == nil {
		ts = []time.Time{}
	}

	c.JSON(http.StatusOK, gin.H{"star": star.Name, "candidates": ts})
}

func (h *handlers) panchang(c *gin.Context) {
	q, err := parseQuery(c, h.cfg)
	if err != nil {
		badRequest(c, err)
		return
	}
	c.JSON(http.StatusOK, panchang.At(q.at))
}

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}

func internalError(c *gin.Context, err error) {
	log.Error().Err(err).Str("path", c.FullPath()).Msg("computation failed")
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
