// Package http exposes the order and profile stores to the UI shell as a
// JSON API. The handlers are a thin boundary: they validate and translate,
// the application core decides.
package http

import (
	"errors"
	"net/http"

	"freightmatch/internal/core/application/usecases/commands"
	"freightmatch/internal/core/application/usecases/queries"
	"freightmatch/internal/core/domain/model/kernel"
	"freightmatch/internal/core/domain/model/profile"
	"freightmatch/internal/core/domain/model/vehicle"
	"freightmatch/internal/core/domain/services"
	"freightmatch/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Default destination used when the client supplies no coordinates; the
// geolocation collaborator on the device normally fills these in.
const (
	defaultLatitude  = -8.063169
	defaultLongitude = -34.871139
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler   commands.CreateOrderCommandHandler
	acceptOrderHandler   commands.AcceptOrderCommandHandler
	completeOrderHandler commands.CompleteOrderCommandHandler
	updateProfileHandler commands.UpdateProfileCommandHandler

	// Query handlers
	getAllOrdersHandler   queries.GetAllOrdersQueryHandler
	getActiveOrderHandler queries.GetActiveOrderQueryHandler
	getProfileHandler     queries.GetProfileQueryHandler
}

// NewServer creates an HTTP server with the required command and query
// handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	acceptOrderHandler commands.AcceptOrderCommandHandler,
	completeOrderHandler commands.CompleteOrderCommandHandler,
	updateProfileHandler commands.UpdateProfileCommandHandler,
	getAllOrdersHandler queries.GetAllOrdersQueryHandler,
	getActiveOrderHandler queries.GetActiveOrderQueryHandler,
	getProfileHandler queries.GetProfileQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:    createOrderHandler,
		acceptOrderHandler:    acceptOrderHandler,
		completeOrderHandler:  completeOrderHandler,
		updateProfileHandler:  updateProfileHandler,
		getAllOrdersHandler:   getAllOrdersHandler,
		getActiveOrderHandler: getActiveOrderHandler,
		getProfileHandler:     getProfileHandler,
	}
}

// RegisterRoutes mounts the API under /api/v1. Order creation is the
// shipper side; accept, complete, active order and profile belong to the
// carrier side. The role split is a trusted-header convention, not
// authentication.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1", RoleFromHeader)

	api.GET("/vehicle-classes", s.GetVehicleClasses)
	api.GET("/orders", s.GetOrders)
	api.POST("/orders", s.CreateOrder, RequireRole(RoleCompany))
	api.POST("/orders/:id/accept", s.AcceptOrder, RequireRole(RoleCarrier))
	api.POST("/orders/:id/complete", s.CompleteOrder, RequireRole(RoleCarrier))
	api.GET("/orders/active", s.GetActiveOrder, RequireRole(RoleCarrier))
	api.GET("/profile", s.GetProfile, RequireRole(RoleCarrier))
	api.PUT("/profile", s.UpdateProfile, RequireRole(RoleCarrier))
}

// Error is the JSON error envelope returned by every handler.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Coords mirrors the destinationCoords wire shape.
type Coords struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// OrderResponse is the wire representation of one order.
type OrderResponse struct {
	ID                string  `json:"id"`
	Vehicle           string  `json:"vehicle"`
	Destination       string  `json:"destination"`
	DestinationCoords Coords  `json:"destinationCoords"`
	Price             float64 `json:"price"`
	Status            string  `json:"status"`
	CreatedAt         int64   `json:"createdAt"`
	ProofPhoto        *string `json:"proofPhoto"`
}

// NewOrderRequest is the order creation payload. Coordinates and price are
// optional: missing coordinates fall back to the default point, a missing
// price is derived from the vehicle class catalog.
type NewOrderRequest struct {
	Vehicle           string   `json:"vehicle"`
	Destination       string   `json:"destination"`
	DestinationCoords *Coords  `json:"destinationCoords"`
	Price             *float64 `json:"price"`
}

// CompleteOrderRequest is the completion payload; ProofPhoto may be null.
type CompleteOrderRequest struct {
	ProofPhoto *string `json:"proofPhoto"`
}

// ProfileResponse is the wire representation of the carrier profile.
type ProfileResponse struct {
	Name         string  `json:"name"`
	LicensePlate string  `json:"licensePlate"`
	PhotoURI     *string `json:"photoUri"`
}

// UpdateProfileRequest carries a partial profile update; absent keys leave
// the stored values unchanged.
type UpdateProfileRequest struct {
	Name         *string `json:"name"`
	LicensePlate *string `json:"licensePlate"`
	PhotoURI     *string `json:"photoUri"`
}

// VehicleClassResponse is one catalog entry.
type VehicleClassResponse struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Capacity    string  `json:"capacity"`
}

func toOrderResponse(m queries.OrderReadModel) OrderResponse {
	return OrderResponse{
		ID:          m.ID.String(),
		Vehicle:     m.VehicleClass.String(),
		Destination: m.Destination,
		DestinationCoords: Coords{
			Latitude:  m.DestinationPoint.Latitude(),
			Longitude: m.DestinationPoint.Longitude(),
		},
		Price:      m.Price,
		Status:     m.Status.String(),
		CreatedAt:  m.CreatedAt.UnixMilli(),
		ProofPhoto: m.ProofPhoto,
	}
}

// errorResponse maps core errors onto HTTP statuses: unknown identifiers
// are 404, the single-active-order rule is 409, validation and transition
// rejections are 400, anything else is 500.
func errorResponse(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, services.ErrActiveOrderExists):
		status = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, commands.ErrDestinationIsRequired),
		errors.Is(err, commands.ErrPriceIsNegative):
		status = http.StatusBadRequest
	}

	return ctx.JSON(status, Error{
		Code:    status,
		Message: err.Error(),
	})
}

// GetVehicleClasses handles GET /api/v1/vehicle-classes.
func (s *Server) GetVehicleClasses(ctx echo.Context) error {
	specs := vehicle.Classes()
	response := make([]VehicleClassResponse, len(specs))
	for i, spec := range specs {
		response[i] = VehicleClassResponse{
			ID:          spec.Class.String(),
			Title:       spec.Title,
			Description: spec.Description,
			Price:       spec.BasePrice,
			Capacity:    spec.Capacity,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrders handles GET /api/v1/orders - returns every order newest-first.
func (s *Server) GetOrders(ctx echo.Context) error {
	query := queries.NewGetAllOrdersQuery()

	orders, err := s.getAllOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]OrderResponse, len(orders))
	for i, m := range orders {
		response[i] = toOrderResponse(m)
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateOrder handles POST /api/v1/orders - registers a new delivery
// request for the shipper.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req NewOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	class, err := vehicle.ClassFromString(req.Vehicle)
	if err != nil {
		return errorResponse(ctx, err)
	}

	lat, lng := defaultLatitude, defaultLongitude
	if req.DestinationCoords != nil {
		lat, lng = req.DestinationCoords.Latitude, req.DestinationCoords.Longitude
	}
	point, err := kernel.NewGeoPoint(lat, lng)
	if err != nil {
		return errorResponse(ctx, err)
	}

	price := class.BasePrice()
	if req.Price != nil {
		price = *req.Price
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, class, req.Destination, point, price)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": orderID.String()})
}

// AcceptOrder handles POST /api/v1/orders/:id/accept.
func (s *Server) AcceptOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id",
		})
	}

	cmd, err := commands.NewAcceptOrderCommand(orderID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err := s.acceptOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CompleteOrder handles POST /api/v1/orders/:id/complete. The proof photo
// reference comes from the device camera collaborator and may be null when
// the capture was cancelled.
func (s *Server) CompleteOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id",
		})
	}

	var req CompleteOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewCompleteOrderCommand(orderID, req.ProofPhoto)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err := s.completeOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetActiveOrder handles GET /api/v1/orders/active - the carrier's current
// accepted order. Responds 404 when no order is active, which the UI
// treats as "show the available orders list".
func (s *Server) GetActiveOrder(ctx echo.Context) error {
	query := queries.NewGetActiveOrderQuery()

	active, err := s.getActiveOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(active))
}

// GetProfile handles GET /api/v1/profile.
func (s *Server) GetProfile(ctx echo.Context) error {
	query := queries.NewGetProfileQuery()

	current, err := s.getProfileHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, ProfileResponse{
		Name:         current.Name,
		LicensePlate: current.LicensePlate,
		PhotoURI:     current.PhotoURI,
	})
}

// UpdateProfile handles PUT /api/v1/profile - merges the supplied fields
// into the stored profile.
func (s *Server) UpdateProfile(ctx echo.Context) error {
	var req UpdateProfileRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewUpdateProfileCommand(profile.Patch{
		Name:         req.Name,
		LicensePlate: req.LicensePlate,
		PhotoURI:     req.PhotoURI,
	})
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err := s.updateProfileHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
