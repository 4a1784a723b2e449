package pkg

import (
	"encoding/json"
	"errors"
	"net/http"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/simp-lee/gateadmin/internal/domain"
)

// Response is the standard JSON envelope for API responses.
type Response struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

// ValidationErrorResponse lists rejected request fields by their JSON name.
type ValidationErrorResponse struct {
	Code    int               `json:"code"`
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors"`
}

func send(c *gin.Context, status int, message string, data any) {
	c.JSON(status, Response{Code: status, Message: message, Data: data})
}

// Success sends a 200 response.
func Success(c *gin.Context, data any) { send(c, http.StatusOK, "success", data) }

// Created sends a 201 response.
func Created(c *gin.Context, data any) { send(c, http.StatusCreated, "success", data) }

// List sends a 200 response whose data is a query.View.
func List(c *gin.Context, view any) { Success(c, view) }

// Error maps err onto the envelope. AppError codes pick the status; the
// message of an internal or foreign error is never shown to clients.
func Error(c *gin.Context, err error) {
	status := domain.HTTPStatusCode(err)
	msg := "internal error"
	var appErr *domain.AppError
	if errors.As(err, &appErr) && appErr.Code != domain.CodeInternal {
		msg = appErr.Message
	}
	send(c, status, msg, nil)
}

// ValidationError sends a 400 with one entry per failed validator rule.
func ValidationError(c *gin.Context, err error) {
	rejectBody(c, err, nil)
}

// BindAndValidate binds the request body into obj and runs its binding rules.
// On failure the 400 response is already written:
//
//	if !pkg.BindAndValidate(c, &req) { return }
func BindAndValidate(c *gin.Context, obj any) bool {
	err := c.ShouldBind(obj)
	if err == nil {
		return true
	}
	rejectBody(c, err, obj)
	return false
}

func rejectBody(c *gin.Context, err error, obj any) {
	fields := fieldErrors(err, jsonFieldNames(obj))
	if len(fields) == 0 {
		send(c, http.StatusBadRequest, "bad request", nil)
		return
	}
	c.JSON(http.StatusBadRequest, ValidationErrorResponse{
		Code:    http.StatusBadRequest,
		Message: "validation error",
		Errors:  fields,
	})
}

// fieldErrors renders validator failures as "rule" or "rule=param" and JSON
// type mismatches as "type=<go kind>". Other errors yield nil.
func fieldErrors(err error, names map[string]string) map[string]string {
	var ute *json.UnmarshalTypeError
	if errors.As(err, &ute) && ute.Field != "" {
		return map[string]string{ute.Field: "type=" + ute.Type.Kind().String()}
	}

	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return nil
	}
	out := make(map[string]string, len(ve))
	for _, fe := range ve {
		name, ok := names[fe.StructField()]
		if !ok {
			name = strings.ToLower(fe.Field())
		}
		rule := fe.Tag()
		if p := fe.Param(); p != "" {
			rule += "=" + p
		}
		out[name] = rule
	}
	return out
}

// jsonFieldNames maps struct field names of obj to their JSON keys.
func jsonFieldNames(obj any) map[string]string {
	if obj == nil {
		return nil
	}
	t := reflect.TypeOf(obj)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil
	}
	names := make(map[string]string, t.NumField())
	for _, f := range reflect.VisibleFields(t) {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name != "" && name != "-" {
			names[f.Name] = name
		}
	}
	return names
}
