package rest

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/planarx/planargraph/pkg/datastructure"
	"github.com/planarx/planargraph/pkg/server"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
)

type NavigationService interface {
	ShortestPath(ctx context.Context, start, end datastructure.EdgePoint, advanceBy float64) (datastructure.Path, error)
	ClosestPoint(ctx context.Context, location datastructure.Location) (datastructure.EdgePoint, datastructure.Location, error)
	GraphStats(ctx context.Context) (nodes, edges, components int, err error)
}

type NavigationHandler struct {
	svc NavigationService
}

func NavigatorRouter(r *chi.Mux, svc NavigationService) {
	handler := &NavigationHandler{svc}

	r.Group(func(r chi.Router) {
		r.Route("/api/navigation", func(r chi.Router) {
			r.Post("/shortest-path", handler.ShortestPath)
			r.Post("/closest-point", handler.ClosestPoint)
		})
		r.Get("/api/graph/stats", handler.GraphStats)
	})
}

// EdgePointPayload is an edge point in a request body.
type EdgePointPayload struct {
	EdgeID   datastructure.ID `json:"edge_id"`
	Distance float64          `json:"distance" validate:"gte=0"`
}

// ShortestPathRequest model info
//
//	@Description	request body for a shortest path between two edge points
type ShortestPathRequest struct {
	Start     *EdgePointPayload `json:"start" validate:"required"`
	End       *EdgePointPayload `json:"end" validate:"required"`
	AdvanceBy float64           `json:"advance_by" validate:"gte=0"`
}

func (s *ShortestPathRequest) Bind(r *http.Request) error {
	if s.Start == nil || s.End == nil {
		return errors.New("invalid request")
	}
	return nil
}

// ShortestPathResponse model info
//
//	@Description	response body for a shortest path query
type ShortestPathResponse struct {
	Polyline      string                   `json:"polyline"`
	Locations     []datastructure.Location `json:"locations"`
	OrientedEdges []OrientedEdgePayload    `json:"oriented_edges"`
	NodeIDs       []datastructure.ID       `json:"node_ids"`
	Start         datastructure.EdgePoint  `json:"start"`
	End           datastructure.EdgePoint  `json:"end"`
	Length        float64                  `json:"length"`
}

type OrientedEdgePayload struct {
	EdgeID    datastructure.ID `json:"edge_id"`
	IsForward bool             `json:"is_forward"`
}

func RenderShortestPathResponse(path datastructure.Path) *ShortestPathResponse {
	orientedEdges := make([]OrientedEdgePayload, 0, len(path.OrientedEdges))
	for _, oe := range path.OrientedEdges {
		orientedEdges = append(orientedEdges, OrientedEdgePayload{EdgeID: oe.Edge.ID, IsForward: oe.IsForward})
	}
	nodeIDs := make([]datastructure.ID, 0, len(path.Nodes))
	for _, n := range path.Nodes {
		nodeIDs = append(nodeIDs, n.ID)
	}
	return &ShortestPathResponse{
		Polyline:      datastructure.RenderPath(path.Locations),
		Locations:     path.Locations,
		OrientedEdges: orientedEdges,
		NodeIDs:       nodeIDs,
		Start:         path.Start,
		End:           path.End,
		Length:        path.Length,
	}
}

// ShortestPath
//
//	@Summary		shortest path between two points on edge polylines
//	@Tags			navigations
//	@Param			body	body	ShortestPathRequest	true	"start and end edge points"
//	@Accept			application/json
//	@Produce		application/json
//	@Router			/navigation/shortest-path [post]
//	@Success		200	{object}	ShortestPathResponse
//	@Failure		400	{object}	ErrResponse
//	@Failure		404	{object}	ErrResponse
//	@Failure		500	{object}	ErrResponse
func (h *NavigationHandler) ShortestPath(w http.ResponseWriter, r *http.Request) {
	data := &ShortestPathRequest{}
	if err := render.Bind(r, data); err != nil {
		render.Render(w, r, ErrInvalidRequest(err))
		return
	}
	if !h.validate(w, r, data) {
		return
	}

	start := datastructure.EdgePoint{EdgeID: data.Start.EdgeID, Distance: data.Start.Distance}
	end := datastructure.EdgePoint{EdgeID: data.End.EdgeID, Distance: data.End.Distance}
	path, err := h.svc.ShortestPath(r.Context(), start, end, data.AdvanceBy)
	if err != nil {
		renderServiceError(w, r, err)
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, RenderShortestPathResponse(path))
}

// ClosestPointRequest model info
//
//	@Description	request body for snapping a location to the graph
type ClosestPointRequest struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func (s *ClosestPointRequest) Bind(r *http.Request) error {
	return nil
}

// ClosestPointResponse model info
//
//	@Description	response body for a closest point query
type ClosestPointResponse struct {
	EdgeID   datastructure.ID       `json:"edge_id"`
	Distance float64                `json:"distance"`
	Location datastructure.Location `json:"location"`
}

// ClosestPoint
//
//	@Summary		closest point on any edge polyline to a query location
//	@Tags			navigations
//	@Param			body	body	ClosestPointRequest	true	"query location"
//	@Accept			application/json
//	@Produce		application/json
//	@Router			/navigation/closest-point [post]
//	@Success		200	{object}	ClosestPointResponse
//	@Failure		400	{object}	ErrResponse
//	@Failure		404	{object}	ErrResponse
//	@Failure		500	{object}	ErrResponse
func (h *NavigationHandler) ClosestPoint(w http.ResponseWriter, r *http.Request) {
	data := &ClosestPointRequest{}
	if err := render.Bind(r, data); err != nil {
		render.Render(w, r, ErrInvalidRequest(err))
		return
	}

	point, snapped, err := h.svc.ClosestPoint(r.Context(), datastructure.NewLocation(data.X, data.Y))
	if err != nil {
		renderServiceError(w, r, err)
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, &ClosestPointResponse{EdgeID: point.EdgeID, Distance: point.Distance, Location: snapped})
}

// GraphStatsResponse model info
//
//	@Description	node, edge, and component counts of the loaded graph
type GraphStatsResponse struct {
	Nodes      int `json:"nodes"`
	Edges      int `json:"edges"`
	Components int `json:"components"`
}

// GraphStats
//
//	@Summary		summary statistics of the loaded graph
//	@Tags			navigations
//	@Produce		application/json
//	@Router			/graph/stats [get]
//	@Success		200	{object}	GraphStatsResponse
//	@Failure		500	{object}	ErrResponse
func (h *NavigationHandler) GraphStats(w http.ResponseWriter, r *http.Request) {
	nodes, edges, components, err := h.svc.GraphStats(r.Context())
	if err != nil {
		renderServiceError(w, r, err)
		return
	}
	render.Status(r, http.StatusOK)
	render.JSON(w, r, &GraphStatsResponse{Nodes: nodes, Edges: edges, Components: components})
}

func (h *NavigationHandler) validate(w http.ResponseWriter, r *http.Request, data interface{}) bool {
	validate := validator.New()
	if err := validate.Struct(data); err != nil {
		english := en.New()
		uni := ut.New(english, english)
		trans, _ := uni.GetTranslator("en")
		_ = enTranslations.RegisterDefaultTranslations(validate, trans)
		vv := translateError(err, trans)
		render.Render(w, r, ErrValidation(err, vv))
		return false
	}
	return true
}

func renderServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var appErr *server.Error
	if errors.As(err, &appErr) {
		switch appErr.AppErrCode() {
		case server.ErrNotFound:
			render.Render(w, r, ErrNotFoundRend(err))
			return
		case server.ErrBadParamInput:
			render.Render(w, r, ErrInvalidRequest(err))
			return
		}
	}
	render.Render(w, r, ErrInternalServerErrorRend(errors.New("internal server error")))
}

// ErrResponse model info
//
//	@Description	model for an error response
type ErrResponse struct {
	Err            error `json:"-"` // low-level runtime error
	HTTPStatusCode int   `json:"-"` // http response status code

	StatusText    string   `json:"status"`          // user-level status message
	AppCode       int64    `json:"code,omitempty"`  // application-specific error code
	ErrorText     string   `json:"error,omitempty"` // application-level error message, for debugging
	ErrValidation []string `json:"validation,omitempty"`
}

func (e *ErrResponse) Render(w http.ResponseWriter, r *http.Request) error {
	render.Status(r, e.HTTPStatusCode)
	return nil
}

func ErrInvalidRequest(err error) render.Renderer {
	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: http.StatusBadRequest,
		StatusText:     "Invalid request.",
		ErrorText:      err.Error(),
	}
}

func ErrNotFoundRend(err error) render.Renderer {
	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: http.StatusNotFound,
		StatusText:     "Resource not found.",
		ErrorText:      err.Error(),
	}
}

func ErrInternalServerErrorRend(err error) render.Renderer {
	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: http.StatusInternalServerError,
		StatusText:     "Internal server error.",
		ErrorText:      err.Error(),
	}
}

func ErrValidation(err error, errsValidation []error) render.Renderer {
	vv := make([]string, 0, len(errsValidation))
	for _, e := range errsValidation {
		vv = append(vv, e.Error())
	}
	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: http.StatusBadRequest,
		StatusText:     "Invalid request.",
		ErrorText:      err.Error(),
		ErrValidation:  vv,
	}
}

func translateError(err error, trans ut.Translator) (errs []error) {
	if err == nil {
		return nil
	}
	validatorErrs := err.(validator.ValidationErrors)
	for _, e := range validatorErrs {
		translatedErr := fmt.Errorf(e.Translate(trans))
		errs = append(errs, translatedErr)
	}
	return errs
}
