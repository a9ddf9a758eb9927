package httpapi

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/MavisWRLD/felho-beadando/internal/domain"
	"github.com/MavisWRLD/felho-beadando/internal/service"
)

type Handler struct {
	Catalog service.CatalogServiceInterface
	Orders  service.OrderServiceInterface
	Images  service.ImageServiceInterface
}

func NewHandler(catalog service.CatalogServiceInterface, orders service.OrderServiceInterface, images service.ImageServiceInterface) *Handler {
	return &Handler{Catalog: catalog, Orders: orders, Images: images}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")
	r.HandleFunc("/api/pizzas", h.listPizzas).Methods("GET")
	r.HandleFunc("/api/get-image-url", h.getImageURL).Methods("GET")
	r.HandleFunc("/api/orders", h.createOrder).Methods("POST")
	r.HandleFunc("/api/orders", h.listOrders).Methods("GET")
	r.HandleFunc("/api/orders/{id}", h.getOrder).Methods("GET")
	r.HandleFunc("/api/orders/{id}/qrcode", h.getOrderQRCode).Methods("GET")
	r.HandleFunc("/api/upload", h.uploadImage).Methods("POST")
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"service":   "pizza-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (h *Handler) listPizzas(w http.ResponseWriter, r *http.Request) {
	pizzas, err := h.Catalog.List(r.Context())
	if err != nil {
		log.Printf("Error listing pizzas: %v", err)
		respondError(w, http.StatusInternalServerError, "Adatbázis hiba")
		return
	}
	respondJSON(w, http.StatusOK, pizzas)
}

func (h *Handler) getImageURL(w http.ResponseWriter, r *http.Request) {
	filename := r.URL.Query().Get("filename")
	if filename == "" {
		respondError(w, http.StatusBadRequest, "Filename paraméter kötelező")
		return
	}

	url, err := h.Images.ImageURL(r.Context(), filename)
	if err != nil {
		log.Printf("Error presigning %s: %v", filename, err)
		respondError(w, http.StatusInternalServerError, "Nem sikerült az URL generálása")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"url": url})
}

func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request) {
	var req domain.OrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON format")
		return
	}

	order, err := h.Orders.Create(r.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidOrder) {
			respondError(w, http.StatusBadRequest, "Hiányzó adatok")
			return
		}
		log.Printf("Error creating order: %v", err)
		respondError(w, http.StatusInternalServerError, "Rendelés rögzítési hiba")
		return
	}

	respondJSON(w, http.StatusOK, domain.OrderResponse{
		Success: true,
		OrderID: order.ID,
		Message: fmt.Sprintf("Rendelés #%d sikeresen rögzítve. Utánvéttel 30-45 perc alatt érkezik.", order.ID),
	})
}

func (h *Handler) listOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.Orders.List()
	if err != nil {
		log.Printf("Error listing orders: %v", err)
		respondError(w, http.StatusInternalServerError, "Adatbázis hiba")
		return
	}
	respondJSON(w, http.StatusOK, orders)
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	orderID, _ := strconv.Atoi(mux.Vars(r)["id"])

	order, err := h.Orders.Get(orderID)
	if err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			respondError(w, http.StatusNotFound, "Rendelés nem található")
			return
		}
		log.Printf("Error fetching order %d: %v", orderID, err)
		respondError(w, http.StatusInternalServerError, "Adatbázis hiba")
		return
	}
	respondJSON(w, http.StatusOK, order)
}

func (h *Handler) getOrderQRCode(w http.ResponseWriter, r *http.Request) {
	orderID, _ := strconv.Atoi(mux.Vars(r)["id"])

	qr, err := h.Orders.GetQRCode(orderID)
	if err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			respondError(w, http.StatusNotFound, "Rendelés nem található")
			return
		}
		log.Printf("Error fetching QR code for order %d: %v", orderID, err)
		respondError(w, http.StatusInternalServerError, "Adatbázis hiba")
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(qr)
}

func (h *Handler) uploadImage(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Filename   string `json:"filename"`
		FileBuffer string `json:"fileBuffer"`
		Filetype   string `json:"filetype"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON format")
		return
	}
	if payload.Filename == "" || payload.FileBuffer == "" {
		respondError(w, http.StatusBadRequest, "Hiányzó fájl adatok")
		return
	}

	body, err := base64.StdEncoding.DecodeString(payload.FileBuffer)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid file encoding")
		return
	}

	location, key, err := h.Images.Upload(r.Context(), payload.Filename, payload.Filetype, body)
	if err != nil {
		log.Printf("Error uploading %s: %v", payload.Filename, err)
		respondError(w, http.StatusInternalServerError, "Feltöltési hiba")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"url":     location,
		"key":     key,
	})
}
