package httpserver

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/phenrril/stylematch/internal/adapters/catalog/xlsx"
	"github.com/phenrril/stylematch/internal/colormatch"
	"github.com/phenrril/stylematch/internal/domain"
	"github.com/phenrril/stylematch/internal/usecase"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type Server struct {
	mux      *http.ServeMux
	products *usecase.ProductUC
	profiles *usecase.ProfileUC
	wardrobe *usecase.WardrobeUC
	style    *usecase.StyleUC
}

func New(p *usecase.ProductUC, pr *usecase.ProfileUC, w *usecase.WardrobeUC, st *usecase.StyleUC) http.Handler {
	s := &Server{mux: http.NewServeMux(), products: p, profiles: pr, wardrobe: w, style: st}
	s.routes()
	return Chain(s.mux,
		RequestID,
		Recovery,
		Logging,
	)
}

func (s *Server) routes() {
	s.mux.HandleFunc("GET /healthz", s.handleHealth)

	s.mux.HandleFunc("GET /api/products", s.apiProducts)
	s.mux.HandleFunc("POST /api/products", s.apiProductCreate)
	s.mux.HandleFunc("GET /api/products/{id}", s.apiProductByID)
	s.mux.HandleFunc("GET /api/categories", s.apiCategories)

	s.mux.HandleFunc("GET /api/harmony", s.apiHarmony)
	s.mux.HandleFunc("GET /api/palettes", s.apiPalettes)
	s.mux.HandleFunc("POST /api/outfits", s.apiOutfits)
	s.mux.HandleFunc("GET /api/recommendations", s.apiRecommendations)

	s.mux.HandleFunc("GET /api/profiles/{userID}", s.apiProfileGet)
	s.mux.HandleFunc("PUT /api/profiles/{userID}", s.apiProfilePut)

	s.mux.HandleFunc("GET /api/wardrobe/{userID}", s.apiWardrobeList)
	s.mux.HandleFunc("POST /api/wardrobe/{userID}", s.apiWardrobeAdd)
	s.mux.HandleFunc("DELETE /api/wardrobe/{userID}/{itemID}", s.apiWardrobeRemove)
	s.mux.HandleFunc("GET /api/wardrobe/{userID}/outfits", s.apiWardrobeOutfits)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) apiProducts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	gender, err := parseGender(q.Get("gender"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	page := atoiDefault(q.Get("page"), 1)
	size := atoiDefault(q.Get("page_size"), 20)
	list, total, err := s.products.List(r.Context(), domain.ProductFilter{
		Category:   q.Get("category"),
		Gender:     gender,
		ActiveOnly: true,
		Page:       page,
		PageSize:   size,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": list, "total": total, "page": page, "page_size": size})
}

func (s *Server) apiProductCreate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name          string   `json:"name"`
		Brand         string   `json:"brand"`
		Description   string   `json:"description"`
		Category      string   `json:"category"`
		Color         string   `json:"color"`
		Price         float64  `json:"price"`
		OriginalPrice *float64 `json:"original_price"`
		Rating        *float64 `json:"rating"`
		StockQuantity *int     `json:"stock_quantity"`
		Gender        string   `json:"gender"`
		ImageURL      string   `json:"image_url"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, fmt.Errorf("%w: json", domain.ErrInvalidInput))
		return
	}
	p := &domain.Product{
		Name:          req.Name,
		Brand:         req.Brand,
		Description:   req.Description,
		Category:      domain.Category(req.Category),
		Color:         req.Color,
		Price:         req.Price,
		OriginalPrice: req.OriginalPrice,
		Rating:        req.Rating,
		StockQuantity: req.StockQuantity,
		Gender:        domain.Gender(req.Gender),
		ImageURL:      req.ImageURL,
		Active:        true,
	}
	if err := s.products.Create(r.Context(), p); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, p)
}

func (s *Server) apiProductByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	p, err := s.products.Get(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) apiCategories(w http.ResponseWriter, r *http.Request) {
	cats, err := s.products.Categories(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"categories": cats})
}

// apiHarmony acepta colores con o sin '#', ya que en una query el '#' tiene que ir como %23.
func (s *Server) apiHarmony(w http.ResponseWriter, r *http.Request) {
	a, err := colormatch.NormalizeHex(r.URL.Query().Get("a"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	b, err := colormatch.NormalizeHex(r.URL.Query().Get("b"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	res, err := colormatch.Evaluate(a, b)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"a": a, "b": b, "score": res.Score, "harmony": res.Harmony})
}

func (s *Server) apiPalettes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"palettes": colormatch.Presets(), "occasions": colormatch.Occasions()})
}

type outfitsRequest struct {
	UserID   string   `json:"user_id"`
	Palette  []string `json:"palette"`
	SkinTone string   `json:"skin_tone"`
	Occasion string   `json:"occasion"`
	Gender   string   `json:"gender"`
	Max      int      `json:"max"`
}

func (s *Server) apiOutfits(w http.ResponseWriter, r *http.Request) {
	var req outfitsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, fmt.Errorf("%w: json", domain.ErrInvalidInput))
		return
	}
	userID, err := parseOptionalUUID(req.UserID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	gender, err := parseGender(req.Gender)
	if err != nil {
		writeError(w, r, err)
		return
	}
	combos, err := s.style.Outfits(r.Context(), usecase.OutfitRequest{
		PaletteSource: usecase.PaletteSource{UserID: userID, Palette: req.Palette, SkinTone: req.SkinTone},
		Occasion:      req.Occasion,
		Gender:        gender,
		Max:           req.Max,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	if strings.EqualFold(r.URL.Query().Get("format"), "xlsx") {
		writeOutfitsXLSX(w, r, combos)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"outfits": combos})
}

func writeOutfitsXLSX(w http.ResponseWriter, r *http.Request, combos []domain.OutfitCombination) {
	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="outfits.xlsx"`)
	if err := xlsx.WriteOutfits(w, combos); err != nil {
		log.Error().Err(err).Str("request_id", requestIDFrom(r.Context())).Msg("exportar xlsx")
	}
}

func (s *Server) apiRecommendations(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	userID, err := parseOptionalUUID(q.Get("user_id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	gender, err := parseGender(q.Get("gender"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	recs, err := s.style.Recommend(r.Context(), usecase.RecommendRequest{
		PaletteSource: usecase.PaletteSource{UserID: userID, Palette: splitList(q.Get("palette")), SkinTone: q.Get("skin_tone")},
		Occasion:      q.Get("occasion"),
		Gender:        gender,
		Category:      q.Get("category"),
		Limit:         atoiDefault(q.Get("limit"), 0),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": recs})
}

func (s *Server) apiProfileGet(w http.ResponseWriter, r *http.Request) {
	userID, err := pathUUID(r, "userID")
	if err != nil {
		writeError(w, r, err)
		return
	}
	p, err := s.profiles.Get(r.Context(), userID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) apiProfilePut(w http.ResponseWriter, r *http.Request) {
	userID, err := pathUUID(r, "userID")
	if err != nil {
		writeError(w, r, err)
		return
	}
	var req struct {
		SkinTone string   `json:"skin_tone"`
		Palette  []string `json:"color_palette"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, fmt.Errorf("%w: json", domain.ErrInvalidInput))
		return
	}
	p, err := s.profiles.Save(r.Context(), userID, req.SkinTone, req.Palette)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) apiWardrobeList(w http.ResponseWriter, r *http.Request) {
	userID, err := pathUUID(r, "userID")
	if err != nil {
		writeError(w, r, err)
		return
	}
	items, err := s.wardrobe.List(r.Context(), userID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": items})
}

func (s *Server) apiWardrobeAdd(w http.ResponseWriter, r *http.Request) {
	userID, err := pathUUID(r, "userID")
	if err != nil {
		writeError(w, r, err)
		return
	}
	var req struct {
		ProductID string `json:"product_id"`
		Size      string `json:"size"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, fmt.Errorf("%w: json", domain.ErrInvalidInput))
		return
	}
	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		writeError(w, r, fmt.Errorf("%w: product_id", domain.ErrInvalidInput))
		return
	}
	item, err := s.wardrobe.Add(r.Context(), userID, productID, req.Size)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

func (s *Server) apiWardrobeRemove(w http.ResponseWriter, r *http.Request) {
	userID, err := pathUUID(r, "userID")
	if err != nil {
		writeError(w, r, err)
		return
	}
	itemID, err := pathUUID(r, "itemID")
	if err != nil {
		writeError(w, r, err)
		return
	}
	if err := s.wardrobe.Remove(r.Context(), userID, itemID); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) apiWardrobeOutfits(w http.ResponseWriter, r *http.Request) {
	userID, err := pathUUID(r, "userID")
	if err != nil {
		writeError(w, r, err)
		return
	}
	q := r.URL.Query()
	combos, err := s.style.WardrobeOutfits(r.Context(), userID, q.Get("occasion"), atoiDefault(q.Get("max"), 0))
	if err != nil {
		writeError(w, r, err)
		return
	}
	if strings.EqualFold(q.Get("format"), "xlsx") {
		writeOutfitsXLSX(w, r, combos)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"outfits": combos})
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrInvalidInput), errors.Is(err, colormatch.ErrInvalidColorFormat):
		code = http.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		code = http.StatusNotFound
	}
	if code == http.StatusInternalServerError {
		log.Error().Err(err).Str("path", r.URL.Path).Str("request_id", requestIDFrom(r.Context())).Msg("error interno")
		writeJSON(w, code, map[string]string{"error": "error interno"})
		return
	}
	writeJSON(w, code, map[string]string{"error": err.Error()})
}

func pathUUID(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(r.PathValue(name))
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %s inválido", domain.ErrInvalidInput, name)
	}
	return id, nil
}

func parseOptionalUUID(s string) (uuid.UUID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return uuid.Nil, nil
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: user_id inválido", domain.ErrInvalidInput)
	}
	return id, nil
}

func parseGender(s string) (domain.Gender, error) {
	if strings.TrimSpace(s) == "" {
		return "", nil
	}
	g, ok := domain.ParseGender(s)
	if !ok {
		return "", fmt.Errorf("%w: género %q", domain.ErrInvalidInput, s)
	}
	return g, nil
}

func atoiDefault(s string, def int) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return def
	}
	return n
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
