package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"

	"cloud.google.com/go/bigquery"
	"github.com/GoogleCloudPlatform/functions-framework-go/funcframework"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"

	"crosswarped.com/wires"
	"crosswarped.com/wires/pkg/export"
)

const (
	projectID   = "crosswarped-x"
	inputsTable = "`crosswarped-x.Wires.puzzle_inputs`"

	formatJSON    = "json"
	formatGeoJSON = "geojson"
)

type SolveWiresRequest struct {
	Input                string `json:"input"`
	PuzzleID             string `json:"puzzleId"`
	IncludeIntersections bool   `json:"includeIntersections"`
	Format               string `json:"format"`
}

type IntersectionResponse struct {
	X            float64 `json:"x"`
	Y            float64 `json:"y"`
	Distance     float64 `json:"distance"`
	Step         float64 `json:"step"`
	CombinedStep float64 `json:"combinedStep"`
}

type SolveWiresResponse struct {
	Success              bool                   `json:"success"`
	RequestID            string                 `json:"requestId"`
	Wires                int                    `json:"wires"`
	ClosestDistance      *float64               `json:"closestDistance,omitempty"`
	FastestCombinedSteps *float64               `json:"fastestCombinedSteps,omitempty"`
	Endstep              int                    `json:"endstep"`
	Width                float64                `json:"width"`
	Height               float64                `json:"height"`
	Intersections        []IntersectionResponse `json:"intersections,omitempty"`
	Error                string                 `json:"error,omitempty"`
}

var errBadRequest = errors.New("bad request")

// loadDefinitions fetches the wire definitions stored for a puzzle.
var loadDefinitions = getDefinitions

func getDefinitions(ctx context.Context, puzzleID string) ([]string, error) {
	client, err := bigquery.NewClient(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("bigquery.NewClient: %w", err)
	}
	defer client.Close()

	q := client.Query("SELECT definition FROM " + inputsTable + " WHERE puzzle_id = @puzzle_id ORDER BY line_index")
	q.Location = "US"
	q.Parameters = []bigquery.QueryParameter{
		{Name: "puzzle_id", Value: puzzleID},
	}

	job, err := q.Run(ctx)
	if err != nil {
		return nil, fmt.Errorf("q.Run: %w", err)
	}
	status, err := job.Wait(ctx)
	if err != nil {
		return nil, fmt.Errorf("job.Wait: %w", err)
	}
	if err := status.Err(); err != nil {
		return nil, fmt.Errorf("status.Err: %w", err)
	}
	it, err := job.Read(ctx)
	if err != nil {
		return nil, fmt.Errorf("job.Read: %w", err)
	}

	var definitions []string
	for {
		var row []bigquery.Value
		err := it.Next(&row)
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("it.Next: %w", err)
		}

		definition, ok := row[0].(string)
		if !ok {
			return nil, fmt.Errorf("row[0] is not a string: %v", row[0])
		}
		definitions = append(definitions, definition)
	}
	return definitions, nil
}

func puzzleFor(ctx context.Context, requestID string, req SolveWiresRequest) (*wires.Puzzle, error) {
	if req.Input != "" && req.PuzzleID != "" {
		return nil, fmt.Errorf("%w: only one of input and puzzleId may be set", errBadRequest)
	}
	switch req.Format {
	case "", formatJSON, formatGeoJSON:
	default:
		return nil, fmt.Errorf("%w: unknown format %q", errBadRequest, req.Format)
	}

	input := req.Input
	if req.PuzzleID != "" {
		definitions, err := loadDefinitions(ctx, req.PuzzleID)
		if err != nil {
			return nil, fmt.Errorf("loadDefinitions: %w", err)
		}
		if len(definitions) == 0 {
			return nil, fmt.Errorf("%w: no puzzle with id %q", errBadRequest, req.PuzzleID)
		}
		fmt.Printf("[%s] Loaded %d wire definitions for puzzle %s\n", requestID, len(definitions), req.PuzzleID)
		input = strings.Join(definitions, "\n")
	}

	return wires.NewPuzzle(input), nil
}

func execute(p *wires.Puzzle, requestID string, req SolveWiresRequest) SolveWiresResponse {
	resp := SolveWiresResponse{
		Success:   true,
		RequestID: requestID,
		Wires:     len(p.Wires()),
		Endstep:   p.Endstep(),
		Width:     p.Width(),
		Height:    p.Height(),
	}

	if i, ok := p.ClosestIntersection(); ok {
		d := i.Distance()
		resp.ClosestDistance = &d
	}
	if i, ok := p.FastestIntersection(); ok {
		s := i.CombinedStep
		resp.FastestCombinedSteps = &s
	}

	if req.IncludeIntersections {
		for _, i := range p.Intersections() {
			resp.Intersections = append(resp.Intersections, IntersectionResponse{
				X:            i.Point.X,
				Y:            i.Point.Y,
				Distance:     i.Distance(),
				Step:         i.Step,
				CombinedStep: i.CombinedStep,
			})
		}
	}

	fmt.Printf("[%s] Solved %d wires with %d intersections\n", requestID, resp.Wires, len(p.Intersections()))
	return resp
}

func setCORSHeaders(w http.ResponseWriter) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Content-Type", "application/json")
}

func writeError(w http.ResponseWriter, status int, requestID string, err error) {
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(SolveWiresResponse{
		Success:   false,
		RequestID: requestID,
		Error:     err.Error(),
	})
}

func solveWires(w http.ResponseWriter, r *http.Request) {
	setCORSHeaders(w)

	// Handle OPTIONS request for CORS preflight
	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return
	}

	requestID := uuid.NewString()

	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, requestID, fmt.Errorf("method %s not allowed", r.Method))
		return
	}

	var req SolveWiresRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		fmt.Printf("[%s] Error parsing JSON body: %v\n", requestID, err)
		writeError(w, http.StatusBadRequest, requestID, fmt.Errorf("invalid JSON: %w", err))
		return
	}

	p, err := puzzleFor(r.Context(), requestID, req)
	if errors.Is(err, errBadRequest) {
		writeError(w, http.StatusBadRequest, requestID, err)
		return
	}
	if err != nil {
		fmt.Printf("[%s] Error loading puzzle: %v\n", requestID, err)
		writeError(w, http.StatusInternalServerError, requestID, err)
		return
	}

	if req.Format == formatGeoJSON {
		b, err := export.MarshalGeoJSON(p)
		if err != nil {
			fmt.Printf("[%s] Error marshaling GeoJSON: %v\n", requestID, err)
			writeError(w, http.StatusInternalServerError, requestID, err)
			return
		}
		w.Header().Set("Content-Type", "application/geo+json")
		w.Write(b)
		return
	}

	if err := json.NewEncoder(w).Encode(execute(p, requestID, req)); err != nil {
		fmt.Printf("[%s] Error marshaling response: %v\n", requestID, err)
		w.WriteHeader(http.StatusInternalServerError)
		fmt.Fprint(w, `{"success": false, "error": "Internal server error"}`)
		return
	}
}

func main() {
	funcframework.RegisterHTTPFunction("/solve-wires", solveWires)

	port := "8080"
	if envPort := os.Getenv("PORT"); envPort != "" {
		port = envPort
	}
	hostname := ""
	if localOnly := os.Getenv("LOCAL_ONLY"); localOnly == "true" {
		hostname = "127.0.0.1"
	}
	if err := funcframework.StartHostPort(hostname, port); err != nil {
		log.Fatalf("funcframework.StartHostPort: %v\n", err)
	}
}
