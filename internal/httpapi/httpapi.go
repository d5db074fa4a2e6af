// Package httpapi exposes the region driver over HTTP: a JSON or binary
// region endpoint, CORS, per-request IDs, Prometheus metrics, and plain
// log.Printf logging, all following the teacher's ambient-stack style
// rather than a third-party web framework (see the retrieval pack's
// sparse HTTP surface — net/http.ServeMux is the only ecosystem-neutral
// choice, since no router library appears anywhere in it).
package httpapi

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"

	"github.com/StoreStation/biomegen/internal/cache"
	"github.com/StoreStation/biomegen/pkg/biome"
	"github.com/StoreStation/biomegen/pkg/region"
	"github.com/StoreStation/biomegen/pkg/seed"
)

const chunkSize = 16

var (
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "biomegen_requests_total",
		Help: "Total region HTTP requests, labeled by status.",
	}, []string{"status"})

	chunksGenerated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "biomegen_chunks_generated_total",
		Help: "Total chunks produced by the layer pipeline, across all requests.",
	})

	generateDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "biomegen_generate_duration_seconds",
		Help:    "Time spent generating a region (excludes cache hits).",
		Buckets: prometheus.DefBuckets,
	})
)

// Server wires the region driver, an optional cache, and the request
// handlers together.
type Server struct {
	store          *cache.Store
	corsOrigins    []string
	metricsEnabled bool
}

// New constructs a Server. store may be nil, in which case every request
// falls through to the pipeline. corsOrigins configures the allowed
// cross-origin callers; an empty list allows all origins, matching
// cors.Default(). metricsEnabled gates whether /metrics is mounted.
func New(store *cache.Store, corsOrigins []string, metricsEnabled bool) *Server {
	return &Server{store: store, corsOrigins: corsOrigins, metricsEnabled: metricsEnabled}
}

// Mux builds the full route table, wrapped in CORS middleware.
func (s *Server) Mux() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/region", s.handleRegion)
	if s.metricsEnabled {
		mux.Handle("/metrics", promhttp.Handler())
	}

	corsMiddleware := cors.Default()
	if len(s.corsOrigins) > 0 {
		corsMiddleware = cors.New(cors.Options{AllowedOrigins: s.corsOrigins})
	}
	return corsMiddleware.Handler(withRequestID(mux))
}

func withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.NewString()
		w.Header().Set("X-Request-Id", id)
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("request %s %s %s (%s)", id, r.Method, r.URL.Path, time.Since(start))
	})
}

// errorBody is the JSON shape returned for every 4xx response, mirroring
// the reference platform's jsonify_exception error bodies.
type errorBody struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, status int, msg string) {
	requestsTotal.WithLabelValues("error").Inc()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(errorBody{Error: msg})
}

type regionQuery struct {
	seed      int64
	worldType string
	x, z      int32
	width     uint32
	depth     uint32
	useIndex  bool
	format    string
}

func parseRegionQuery(r *http.Request) (regionQuery, error) {
	q := r.URL.Query()
	var rq regionQuery

	rawSeed := q.Get("seed")
	if rawSeed == "" {
		return rq, fmt.Errorf("missing required parameter %q", "seed")
	}
	rq.seed = seed.Parse(rawSeed)

	rq.worldType = q.Get("wtype")
	if rq.worldType == "" {
		rq.worldType = "DEFAULT"
	}
	if _, err := seed.ParseWorldType(rq.worldType); err != nil {
		return rq, fmt.Errorf("invalid world type %q", rq.worldType)
	}

	x, err := parseIntParam(q, "x", 0, true)
	if err != nil {
		return rq, err
	}
	rq.x = int32(x)

	z, err := parseIntParam(q, "z", 0, true)
	if err != nil {
		return rq, err
	}
	rq.z = int32(z)

	width, err := parseIntParam(q, "width", 16, false)
	if err != nil {
		return rq, err
	}
	if width <= 0 {
		return rq, fmt.Errorf("width must be greater than 0")
	}
	rq.width = uint32(width)

	depth, err := parseIntParam(q, "depth", 16, false)
	if err != nil {
		return rq, err
	}
	if depth <= 0 {
		return rq, fmt.Errorf("depth must be greater than 0")
	}
	rq.depth = uint32(depth)

	rq.useIndex = q.Get("index") == "1" || q.Get("index") == "true"

	rq.format = q.Get("format")
	if rq.format == "" {
		rq.format = "json"
	}
	switch rq.format {
	case "json", "rgb", "png":
	default:
		return rq, fmt.Errorf("unsupported format %q", rq.format)
	}

	return rq, nil
}

func parseIntParam(q map[string][]string, name string, def int64, required bool) (int64, error) {
	vals, ok := q[name]
	if !ok || len(vals) == 0 || vals[0] == "" {
		if required {
			return 0, fmt.Errorf("missing required parameter %q", name)
		}
		return def, nil
	}
	v, err := strconv.ParseInt(vals[0], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid integer parameter %q: %s", name, vals[0])
	}
	return v, nil
}

func (s *Server) handleRegion(w http.ResponseWriter, r *http.Request) {
	rq, err := parseRegionQuery(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	worldType, _ := seed.ParseWorldType(rq.worldType)
	key := cache.Key(rq.seed, rq.worldType, rq.x, rq.z, rq.width, rq.depth, rq.useIndex)

	img, err := s.store.GetOrGenerate(key, func() (*region.Image, error) {
		start := time.Now()
		img, err := region.Generate(region.Request{
			Seed:          rq.seed,
			WorldType:     worldType,
			OriginX:       rq.x,
			OriginZ:       rq.z,
			Width:         rq.width,
			Depth:         rq.depth,
			UseIndexLayer: rq.useIndex,
		})
		generateDuration.Observe(time.Since(start).Seconds())
		if err == nil {
			chunksGenerated.Add(float64((img.Width / chunkSize) * (img.Depth / chunkSize)))
		}
		return img, err
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	requestsTotal.WithLabelValues("ok").Inc()
	w.Header().Set("X-Region-Width", strconv.Itoa(img.Width))
	w.Header().Set("X-Region-Depth", strconv.Itoa(img.Depth))
	writeRegionResponse(w, rq.format, img)
}

func writeRegionResponse(w http.ResponseWriter, format string, img *region.Image) {
	switch format {
	case "rgb":
		w.Header().Set("Content-Type", "application/octet-stream")
		w.Write(img.RGB)
	case "json":
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(struct {
			Width  int     `json:"width"`
			Depth  int     `json:"depth"`
			Values []int32 `json:"values"`
		}{
			Width:  img.Width,
			Depth:  img.Depth,
			Values: codesToInt32(img.Codes),
		})
	default:
		// "png" is served exactly like "rgb": the raw packed RGB bytes with
		// an application/octet-stream content type. No PNG encoding happens
		// here; internal/imageio does that for the map CLI subcommand.
		w.Header().Set("Content-Type", "application/octet-stream")
		w.Write(img.RGB)
	}
}

func codesToInt32(codes []biome.Code) []int32 {
	out := make([]int32, len(codes))
	for i, c := range codes {
		out[i] = int32(c)
	}
	return out
}
