package web

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"archecal/internal/archetype"
	"archecal/internal/capture"
	"archecal/internal/export"
	"archecal/internal/grid"
	appLog "archecal/internal/log"
	"archecal/internal/schedule"
)

// LogObserver forwards normalization diagnostics to the application log.
// It is the web layer's stand-in for the original tool's sidebar.
func LogObserver(r schedule.Report) {
	appLog.Info("schedule normalized",
		"source", r.Source,
		"columns", strings.Join(r.CanonicalColumns, ","),
		"row_count", r.RowCount,
	)
}

func variantFromParam(c *gin.Context) (schedule.Variant, bool) {
	switch schedule.Variant(c.Param("variant")) {
	case schedule.VariantBusy:
		return schedule.VariantBusy, true
	case schedule.VariantQuiet:
		return schedule.VariantQuiet, true
	default:
		return "", false
	}
}

// gridOptions derives the grid window from config. Unparsable window
// strings fall back to the defaults rather than failing the request.
func (s *Server) gridOptions() grid.Options {
	var opts grid.Options
	opts.SlotMinutes = s.cfg.SlotMinutes
	if m, ok := schedule.ParseClock(s.cfg.WindowStart); ok {
		opts.WindowStart = m
	}
	if m, ok := schedule.ParseClock(s.cfg.WindowEnd); ok {
		opts.WindowEnd = m
	}
	return opts
}

// cellView is one rendered grid cell.
type cellView struct {
	Color   string
	Text    string
	Tooltip string
}

// rowView is one slot row of the rendered grid.
type rowView struct {
	Label string
	Cells []cellView
}

// variantView is everything a template needs for one week variant.
type variantView struct {
	Variant    string
	Title      string
	Loaded     bool
	Source     string
	EventCount int
	Days       []string
	DaysLine   string
	Rows       []rowView
}

// indexView drives the landing page.
type indexView struct {
	Empty  bool
	Legend []archetype.Archetype
	Busy   variantView
	Quiet  variantView
}

// gridPageView drives the standalone grid page used for PNG capture.
type gridPageView struct {
	Heading string
	Export  bool
	Legend  []archetype.Archetype
	View    variantView
}

// buildVariantView resolves one variant's grid into template-ready rows.
func (s *Server) buildVariantView(v schedule.Variant) variantView {
	view := variantView{
		Variant: string(v),
		Title:   v.Title(),
	}

	sched, ok := s.store.Get(v)
	if !ok || len(sched.Events) == 0 {
		return view
	}

	days := schedule.CanonicalOrder(sched.Days())
	g := grid.Build(sched, days, s.gridOptions())

	view.Loaded = true
	view.Source = sched.Source
	view.EventCount = len(sched.Events)
	view.Days = days
	view.DaysLine = strings.Join(days, ", ")

	view.Rows = make([]rowView, len(g.Slots))
	for si, label := range g.SlotLabels {
		cells := make([]cellView, len(days))
		for di := range days {
			text := g.CellText[si][di]
			if !s.cfg.ShowText {
				text = ""
			}
			cells[di] = cellView{
				Color:   g.ColorScale[g.CategoryIndex[si][di]],
				Text:    text,
				Tooltip: g.CellTooltip[si][di],
			}
		}
		view.Rows[si] = rowView{Label: label, Cells: cells}
	}

	return view
}

func (s *Server) handleIndex(c *gin.Context) {
	view := indexView{
		Empty:  s.store.Empty(),
		Legend: archetype.Colored(),
		Busy:   s.buildVariantView(schedule.VariantBusy),
		Quiet:  s.buildVariantView(schedule.VariantQuiet),
	}
	c.HTML(http.StatusOK, "index.html", view)
}

func (s *Server) handleGridPage(c *gin.Context) {
	variant, ok := variantFromParam(c)
	if !ok {
		c.String(http.StatusNotFound, "unknown variant")
		return
	}

	view := s.buildVariantView(variant)
	if !view.Loaded {
		c.String(http.StatusNotFound, "no %s week data loaded", variant)
		return
	}

	c.HTML(http.StatusOK, "grid.html", gridPageView{
		Heading: fmt.Sprintf("%s Week Schedule", variant.Title()),
		Export:  c.Query("export") != "",
		Legend:  archetype.Colored(),
		View:    view,
	})
}

// uploadResult is the per-file outcome of an upload request. Errors are
// reported per file; one bad file never blocks the others.
type uploadResult struct {
	File       string `json:"file"`
	Variant    string `json:"variant,omitempty"`
	EventCount int    `json:"event_count,omitempty"`
	Error      string `json:"error,omitempty"`
}

func (s *Server) handleUpload(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid multipart form"})
		return
	}

	files := form.File["files"]
	if len(files) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no files uploaded"})
		return
	}

	results := make([]uploadResult, 0, len(files))
	for _, hdr := range files {
		res := uploadResult{File: hdr.Filename}

		f, err := hdr.Open()
		if err != nil {
			res.Error = err.Error()
			results = append(results, res)
			continue
		}

		sched, err := schedule.Load(f, hdr.Filename, LogObserver)
		f.Close()
		if err != nil {
			appLog.Error("upload load failed", err, "file", hdr.Filename)
			res.Error = err.Error()
			results = append(results, res)
			continue
		}

		s.store.Replace(sched)
		res.Variant = string(sched.Variant)
		res.EventCount = len(sched.Events)
		results = append(results, res)
	}

	c.JSON(http.StatusOK, gin.H{"results": results})
}

func (s *Server) handleGridJSON(c *gin.Context) {
	variant, ok := variantFromParam(c)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown variant"})
		return
	}

	sched, ok := s.store.Get(variant)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("no %s week data loaded", variant)})
		return
	}

	days := schedule.CanonicalOrder(sched.Days())
	g := grid.Build(sched, days, s.gridOptions())

	c.JSON(http.StatusOK, gin.H{
		"variant": variant,
		"source":  sched.Source,
		"grid":    g,
	})
}

func (s *Server) handleLegend(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"archetypes": archetype.All(),
	})
}

func (s *Server) handleExportXLSX(c *gin.Context) {
	variant, ok := variantFromParam(c)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown variant"})
		return
	}

	sched, ok := s.store.Get(variant)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("no %s week data loaded", variant)})
		return
	}

	days := schedule.CanonicalOrder(sched.Days())
	data, err := export.WriteXLSX(sched, days)
	if err != nil {
		appLog.Error("xlsx export failed", err, "variant", string(variant))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "xlsx export failed"})
		return
	}

	name := fmt.Sprintf("%s_week_schedule.xlsx", variant)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", name))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}

func (s *Server) handleExportPNG(c *gin.Context) {
	variant, ok := variantFromParam(c)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown variant"})
		return
	}
	if _, ok := s.store.Get(variant); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("no %s week data loaded", variant)})
		return
	}

	opts := capture.Options{
		URL:     s.selfURL(fmt.Sprintf("/grid/%s?export=1", variant)),
		Width:   s.cfg.Capture.Width,
		Height:  s.cfg.Capture.Height,
		Timeout: time.Duration(s.cfg.Capture.TimeoutSec) * time.Second,
	}

	png, err := capture.GridPNG(c.Request.Context(), opts)
	if err != nil {
		appLog.Error("png export failed", err, "variant", string(variant))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "png export failed; please retry"})
		return
	}

	name := fmt.Sprintf("%s_week_schedule.png", variant)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", name))
	c.Data(http.StatusOK, "image/png", png)
}

func (s *Server) handleExportICS(c *gin.Context) {
	variant, ok := variantFromParam(c)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown variant"})
		return
	}

	sched, ok := s.store.Get(variant)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("no %s week data loaded", variant)})
		return
	}

	out, err := export.WriteICS(sched, time.Now())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	name := fmt.Sprintf("%s_week_schedule.ics", variant)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", name))
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", []byte(out))
}
