package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"reflect"

	"github.com/spf13/cobra"

	"github.com/magoc/flowgen/constants"
	"github.com/magoc/flowgen/model"
	"github.com/magoc/flowgen/utils"
)

// envelope is the uniform response wrapper for every operation endpoint.
type envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// GenerateHTTPHandlers registers one HTTP handler per operation on the mux.
func GenerateHTTPHandlers(svc WorkflowService, mux *http.ServeMux) {
	for _, op := range GetAllOperations() {
		mux.HandleFunc(op.HTTPPath, generateHTTPHandler(svc, op))
	}
}

// AttachHTTPHandlers registers the operation handlers plus the system
// endpoints (service identity and liveness) on the mux.
func AttachHTTPHandlers(svc WorkflowService, mux *http.ServeMux) {
	GenerateHTTPHandlers(svc, mux)

	mux.HandleFunc(constants.PathRoot, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != constants.PathRoot {
			http.NotFound(w, r)
			return
		}
		w.Header().Set(constants.HeaderContentType, constants.ContentTypeJSON)
		_ = json.NewEncoder(w).Encode(map[string]string{
			"service": constants.ServiceTitle,
			"version": constants.ServiceVersion,
			"status":  "running",
		})
	})

	mux.HandleFunc(constants.PathHealth, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(constants.HeaderContentType, constants.ContentTypeJSON)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(constants.HealthCheckResponse))
	})
}

// generateHTTPHandler builds the handler for a single operation: decode,
// validate, dispatch, wrap. Client-input failures map to 400, everything
// else to 500 prefixed with the operation's failure message.
func generateHTTPHandler(svc WorkflowService, op *OperationDefinition) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != op.HTTPMethod {
			writeOperationError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}

		body, err := io.ReadAll(r.Body)
		if err != nil {
			writeOperationError(w, http.StatusBadRequest, constants.ResponseInvalidRequestBody)
			return
		}

		var doc any
		if err := json.Unmarshal(body, &doc); err != nil {
			writeOperationError(w, http.StatusBadRequest, constants.ResponseInvalidRequestBody)
			return
		}
		if err := model.ValidateDocument(op.ID, op.Schema, doc); err != nil {
			writeOperationError(w, http.StatusBadRequest, err.Error())
			return
		}

		args := reflect.New(op.ArgsType).Interface()
		if err := json.Unmarshal(body, args); err != nil {
			writeOperationError(w, http.StatusBadRequest, constants.ResponseInvalidRequestBody)
			return
		}

		result, err := op.Handler(r.Context(), svc, args)
		if err != nil {
			utils.ErrorCtx(r.Context(), "operation failed", "operation", op.ID, "error", err)
			if errors.Is(err, ErrSchemaViolation) || errors.Is(err, ErrBadRequest) {
				writeOperationError(w, http.StatusBadRequest, err.Error())
				return
			}
			writeOperationError(w, http.StatusInternalServerError, fmt.Sprintf("%s: %v", op.FailureMsg, err))
			return
		}

		writeOperationResult(w, result)
	}
}

func writeOperationResult(w http.ResponseWriter, data any) {
	w.Header().Set(constants.HeaderContentType, constants.ContentTypeJSON)
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(envelope{Success: true, Data: data})
}

func writeOperationError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set(constants.HeaderContentType, constants.ContentTypeJSON)
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(envelope{Success: false, Error: msg})
}

// GenerateCLICommands builds one cobra command per operation. The request
// body is read as JSON from --file or stdin, validated against the
// operation's schema, and the result printed as indented JSON.
func GenerateCLICommands(svc WorkflowService) []*cobra.Command {
	var commands []*cobra.Command
	for _, op := range GetAllOperations() {
		commands = append(commands, generateCLICommand(svc, op))
	}
	return commands
}

func generateCLICommand(svc WorkflowService, op *OperationDefinition) *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   op.CLIUse,
		Short: op.CLIShort,
		Long:  op.Description,
		RunE: func(cmd *cobra.Command, _ []string) error {
			body, err := readCLIBody(file)
			if err != nil {
				return err
			}

			var doc any
			if err := json.Unmarshal(body, &doc); err != nil {
				return fmt.Errorf("%s", constants.ResponseInvalidRequestBody)
			}
			if err := model.ValidateDocument(op.ID, op.Schema, doc); err != nil {
				return err
			}

			args := reflect.New(op.ArgsType).Interface()
			if err := json.Unmarshal(body, args); err != nil {
				return fmt.Errorf("%s", constants.ResponseInvalidRequestBody)
			}

			result, err := op.Handler(cmd.Context(), svc, args)
			if err != nil {
				return fmt.Errorf("%s: %w", op.FailureMsg, err)
			}

			out, err := json.MarshalIndent(result, "", "  ")
			if err != nil {
				return err
			}
			utils.User("%s", out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "read the JSON request body from a file (default: stdin)")
	return cmd
}

func readCLIBody(file string) ([]byte, error) {
	if file != "" {
		return os.ReadFile(file)
	}
	return io.ReadAll(os.Stdin)
}
