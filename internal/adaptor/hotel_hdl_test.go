package adaptor

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"hotel-booking/internal/dto/request"
	"hotel-booking/internal/dto/response"
	"hotel-booking/internal/usecase"
	"hotel-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type stubHotelService struct {
	hotel *response.HotelResponse
	err   error
}

func (s *stubHotelService) GetHotel(context.Context, uuid.UUID) (*response.HotelResponse, error) {
	return s.hotel, s.err
}

func (s *stubHotelService) ListHotels(context.Context, string, *request.PaginatedRequest) (*response.PaginatedResponse[response.HotelResponse], error) {
	return nil, s.err
}

func (s *stubHotelService) ListActiveHotels(context.Context) ([]response.HotelResponse, error) {
	return nil, s.err
}

func (s *stubHotelService) CreateHotel(context.Context, *request.CreateHotelRequest) (*response.HotelResponse, error) {
	return s.hotel, s.err
}

func (s *stubHotelService) UpdateHotel(context.Context, uuid.UUID, *request.UpdateHotelRequest) (*response.HotelResponse, error) {
	return s.hotel, s.err
}

func (s *stubHotelService) DeleteHotel(context.Context, uuid.UUID) error {
	return s.err
}

func hotelRouter(svc usecase.HotelService) *chi.Mux {
	handler := NewHotelHandler(svc, zap.NewNop())
	r := chi.NewRouter()
	r.Get("/api/hotels/{id}", handler.GetHotel)
	return r
}

func TestGetHotelStatusMapping(t *testing.T) {
	hotelID := uuid.New().String()

	cases := []struct {
		name string
		err  error
		code int
	}{
		{"not found", fmt.Errorf("%w: hotel", usecase.ErrNotFound), http.StatusNotFound},
		{"conflict", fmt.Errorf("%w: hotel", usecase.ErrConflict), http.StatusConflict},
		{"invalid state", fmt.Errorf("%w: hotel", usecase.ErrInvalidState), http.StatusConflict},
		{"forbidden", fmt.Errorf("%w: hotel", usecase.ErrForbidden), http.StatusForbidden},
		{"invalid argument", fmt.Errorf("%w: hotel", usecase.ErrInvalidArgument), http.StatusBadRequest},
		{"unknown error", fmt.Errorf("connection reset"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			router := hotelRouter(&stubHotelService{err: tc.err})

			req := httptest.NewRequest(http.MethodGet, "/api/hotels/"+hotelID, nil)
			resp := httptest.NewRecorder()
			router.ServeHTTP(resp, req)

			if resp.Code != tc.code {
				t.Fatalf("expected %d, got %d", tc.code, resp.Code)
			}
		})
	}
}

func TestGetHotelSuccessEnvelope(t *testing.T) {
	hotel := &response.HotelResponse{ID: uuid.New().String(), Name: "Harbor View"}
	router := hotelRouter(&stubHotelService{hotel: hotel})

	req := httptest.NewRequest(http.MethodGet, "/api/hotels/"+hotel.ID, nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	var envelope utils.Response
	if err := json.Unmarshal(resp.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	if !envelope.Status {
		t.Error("envelope status = false, want true")
	}

	data, ok := envelope.Data.(map[string]any)
	if !ok {
		t.Fatalf("envelope data has type %T", envelope.Data)
	}
	if data["name"] != "Harbor View" {
		t.Errorf("hotel name = %v", data["name"])
	}
}

func TestGetHotelInvalidID(t *testing.T) {
	router := hotelRouter(&stubHotelService{})

	req := httptest.NewRequest(http.MethodGet, "/api/hotels/not-a-uuid", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
}
