// SPDX-License-Identifier: MIT

package openapi_server

import (
	"context"
	"net/http"
	"sync"

	"github.com/natevvv/grid-path-search/pkg/grid"
	"github.com/natevvv/grid-path-search/pkg/routing"
)

// DefaultApiService is a service that implements the logic for the DefaultApiServicer
// This service should implement the business logic for every endpoint for the DefaultApi API.
// Include any external packages or services that will be required by this service.
type DefaultApiService struct {
	router *routing.Router

	mu          sync.RWMutex
	mode        routing.Mode    // default mode of requests without one
	searchSpace []grid.Position // search space of the last computed route
}

// NewDefaultApiService creates a default api service answering with the given router.
func NewDefaultApiService(router *routing.Router) DefaultApiServicer {
	return &DefaultApiService{
		router:      router,
		mode:        router.Mode(),
		searchSpace: make([]grid.Position, 0),
	}
}

// ComputeRoute - Compute a new route
func (s *DefaultApiService) ComputeRoute(ctx context.Context, routeRequest RouteRequest) (ImplResponse, error) {
	s.mu.RLock()
	mode := s.mode
	s.mu.RUnlock()

	if routeRequest.Mode != "" {
		var err error
		if mode, err = routing.ParseMode(routeRequest.Mode); err != nil {
			return Response(http.StatusBadRequest, nil), err
		}
	}

	routes, err := s.router.ComputeRoutesWithMode(routeRequest.Origin.Position(), routeRequest.Destination.Position(), mode)
	if err != nil {
		return Response(http.StatusBadRequest, nil), err
	}

	results := make([]RouteResult, 0, len(routes))
	for _, route := range routes {
		routeResult := RouteResult{
			Algorithm:   route.Algorithm.String(),
			Origin:      *routeRequest.Origin,
			Destination: *routeRequest.Destination,
			Reachable:   route.Exists,
			Expansions:  route.Expansions,
		}
		if route.Exists {
			routeResult.Path = &Path{Length: route.Length, Waypoints: NewPoints(route.Waypoints)}
		}
		results = append(results, routeResult)
	}

	s.mu.Lock()
	s.searchSpace = routes[len(routes)-1].SearchSpace
	s.mu.Unlock()

	return Response(http.StatusOK, RoutesResponse{Routes: results}), nil
}

func (s *DefaultApiService) GetGrid(ctx context.Context) (ImplResponse, error) {
	g := s.router.GetGrid()
	response := GridResponse{
		Rows:    g.Rows(),
		Cols:    g.Cols(),
		Blocked: NewPoints(g.BlockedCells()),
	}
	return Response(http.StatusOK, response), nil
}

func (s *DefaultApiService) GetSearchSpace(ctx context.Context) (ImplResponse, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Response(http.StatusOK, Nodes{Waypoints: NewPoints(s.searchSpace)}), nil
}

func (s *DefaultApiService) SetNavigator(ctx context.Context, navigatorRequest NavigatorRequest) (ImplResponse, error) {
	mode, err := routing.ParseMode(navigatorRequest.Navigator)
	if err != nil {
		return Response(http.StatusBadRequest, "Unknown Navigator"), err
	}

	s.mu.Lock()
	s.mode = mode
	s.mu.Unlock()
	return Response(http.StatusOK, mode.String()), nil
}
