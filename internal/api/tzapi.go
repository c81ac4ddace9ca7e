// 包 api：集中注册 HTTP API 路由以解耦主入口，便于后续扩展与替换
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"tzlookup/internal/engine"
	"tzlookup/internal/engineerr"
	"tzlookup/internal/logger"
	"tzlookup/internal/metrics"
)

// BuildRoutes 构建 /timezone 与 /geometry 两个只读端点。rc 为可选的响应缓存，
// 为 nil 时直接查询引擎。查询本身是纯函数（§8 幂等性不变式），缓存只是为了
// 削峰，不影响结果的正确性。
func BuildRoutes(eng engine.Finder, full *engine.Engine, rc *redis.Client) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("/timezone", func(w http.ResponseWriter, r *http.Request) {
		handleTimezone(w, r, eng, rc)
	})

	mux.HandleFunc("/geometry", func(w http.ResponseWriter, r *http.Request) {
		handleGeometry(w, r, full)
	})

	return mux
}

func parseCoord(r *http.Request, name string) (float64, bool) {
	s := r.URL.Query().Get(name)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func handleTimezone(w http.ResponseWriter, r *http.Request, eng engine.Finder, rc *redis.Client) {
	ctx := r.Context()
	w.Header().Set("content-type", "application/json; charset=utf-8")
	w.Header().Set("cache-control", "no-store")

	lng, lngOK := parseCoord(r, "lon")
	lat, latOK := parseCoord(r, "lat")
	mode := r.URL.Query().Get("mode")
	if mode == "" {
		mode = "at"
	}
	if !lngOK || !latOK {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(queryResult{Mode: mode, Error: "lon and lat query parameters are required"})
		return
	}

	res := queryResult{Lng: lng, Lat: lat, Mode: mode}

	cacheKey := fmt.Sprintf("tz:%s:%v:%v", mode, lng, lat)
	if rc != nil {
		if s, _ := rc.Get(ctx, cacheKey).Result(); s != "" {
			metrics.RedisHitsTotal.Inc()
			_ = json.Unmarshal([]byte(s), &res)
			_ = json.NewEncoder(w).Encode(res)
			return
		}
		metrics.RedisMissesTotal.Inc()
	}

	start := time.Now()
	name, found, err := dispatch(eng, mode, lng, lat)
	metrics.QueriesTotal.WithLabelValues(mode).Inc()
	metrics.QueryDurationMs.WithLabelValues(mode).Observe(float64(time.Since(start).Microseconds()) / 1000)
	if err != nil {
		var oob *engineerr.OutOfBoundsError
		if errors.As(err, &oob) {
			metrics.OutOfBoundsTotal.Inc()
		}
		w.WriteHeader(http.StatusBadRequest)
		res.Error = err.Error()
		_ = json.NewEncoder(w).Encode(res)
		return
	}
	if !found {
		metrics.MissesTotal.WithLabelValues(mode).Inc()
	}
	res.Name = name
	res.Found = found

	if rc != nil {
		if b, err := json.Marshal(res); err == nil {
			rc.Set(ctx, cacheKey, string(b), 24*time.Hour)
		}
	}
	logger.L().Debug("tz_query", "mode", mode, "lng", lng, "lat", lat, "found", found)
	_ = json.NewEncoder(w).Encode(res)
}

func dispatch(eng engine.Finder, mode string, lng, lat float64) (string, bool, error) {
	switch mode {
	case "at", "":
		return eng.TimezoneAt(lng, lat)
	case "at-land":
		return eng.TimezoneAtLand(lng, lat)
	case "unique":
		return eng.UniqueTimezoneAt(lng, lat)
	case "certain":
		// CertainTimezoneAt 仅完整引擎暴露
		if full, ok := eng.(*engine.Engine); ok {
			return full.CertainTimezoneAt(lng, lat)
		}
		return eng.TimezoneAt(lng, lat)
	default:
		return eng.TimezoneAt(lng, lat)
	}
}

func handleGeometry(w http.ResponseWriter, r *http.Request, full *engine.Engine) {
	w.Header().Set("content-type", "application/json; charset=utf-8")
	w.Header().Set("cache-control", "no-store")

	if full == nil {
		w.WriteHeader(http.StatusNotImplemented)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "geometry unavailable in lite mode"})
		return
	}
	name := r.URL.Query().Get("name")
	if name == "" {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "name query parameter is required"})
		return
	}
	mp, err := full.GetGeometry(name, r.URL.Query().Get("pairs") == "true")
	if err != nil {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
		return
	}
	_ = json.NewEncoder(w).Encode(mp)
}
