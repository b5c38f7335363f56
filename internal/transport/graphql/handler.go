package graphql

import (
	"context"
	_ "embed"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/99designs/gqlgen/graphql"
	"github.com/vektah/gqlparser/v2"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/gqlerror"
	"github.com/vektah/gqlparser/v2/validator"
)

//go:embed schema.graphql
var schemaSource string

var schema = gqlparser.MustLoadSchema(&ast.Source{Name: "schema.graphql", Input: schemaSource})

const maxBodyBytes = 1 << 20

// Handler serves GraphQL queries and mutations over the study and analytics
// services. Root fields run in document order; mutations run one at a time.
type Handler struct {
	resolver *Resolver
	present  graphql.ErrorPresenterFunc
	log      *slog.Logger
}

// NewHandler creates a Handler.
func NewHandler(study studyService, analytics analyticsService, logger *slog.Logger) *Handler {
	log := logger.With("handler", "graphql")
	return &Handler{
		resolver: &Resolver{study: study, analytics: analytics},
		present:  NewErrorPresenter(log),
		log:      log,
	}
}

// ServeHTTP handles POST /api/v1/graphql.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var params graphql.RawParams
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.UseNumber()
	if err := dec.Decode(&params); err != nil {
		writeResponse(w, http.StatusBadRequest, &graphql.Response{
			Errors: gqlerror.List{gqlerror.Errorf("json body could not be decoded: %s", err)},
		})
		return
	}

	resp, ok := h.Exec(r.Context(), params)
	status := http.StatusOK
	if !ok {
		status = http.StatusUnprocessableEntity
	}
	writeResponse(w, status, resp)
}

// Exec parses, validates and runs one operation. ok is false when the
// document or its variables were rejected before any resolver ran.
func (h *Handler) Exec(ctx context.Context, params graphql.RawParams) (*graphql.Response, bool) {
	doc, errs := gqlparser.LoadQueryWithRules(schema, params.Query, nil)
	if len(errs) > 0 {
		return &graphql.Response{Errors: errs}, false
	}

	op := doc.Operations.ForName(params.OperationName)
	if op == nil {
		if params.OperationName == "" {
			return &graphql.Response{Errors: gqlerror.List{gqlerror.Errorf("operation name is required")}}, false
		}
		return &graphql.Response{Errors: gqlerror.List{gqlerror.Errorf("operation %s not found", params.OperationName)}}, false
	}

	vars, err := validator.VariableValues(schema, op, params.Variables)
	if err != nil {
		return &graphql.Response{Errors: gqlerror.List{gqlerror.WrapIfUnwrapped(err)}}, false
	}

	var root *ast.Definition
	switch op.Operation {
	case ast.Query:
		root = schema.Query
	case ast.Mutation:
		root = schema.Mutation
	default:
		return &graphql.Response{Errors: gqlerror.List{gqlerror.Errorf("%s operations are not supported", op.Operation)}}, false
	}

	e := &executor{resolver: h.resolver, present: h.present, vars: vars}
	data := e.executeRoot(ctx, root, op.SelectionSet)

	resp := &graphql.Response{Errors: e.errs}
	if data != nil {
		raw, err := json.Marshal(data)
		if err != nil {
			h.log.ErrorContext(ctx, "encode graphql response", slog.String("error", err.Error()))
			resp.Errors = append(resp.Errors, gqlerror.Errorf("internal error"))
			return resp, true
		}
		resp.Data = raw
	}
	return resp, true
}

func writeResponse(w http.ResponseWriter, status int, resp *graphql.Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}
