package web

import (
	"context"
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

// Context wraps gin's context with a request-scoped context.Context and
// deferred param/query validation. Parse errors are collected and only
// surfaced when the handler calls ValidParam/ValidQuery, so handlers
// can read every input first and fail once.
type Context struct {
	*gin.Context
	Ctx context.Context

	paramErrs []error
	queryErrs []error
}

func NewContext(c *gin.Context) *Context {
	return &Context{Context: c, Ctx: c.Request.Context()}
}

// GetParam reads a path parameter converted to the requested kind.
func (c *Context) GetParam(kind reflect.Kind, name string) interface{} {
	value := c.Param(name)

	switch kind {
	case reflect.Int:
		v, err := strconv.Atoi(value)
		if err != nil {
			c.paramErrs = append(c.paramErrs, errors.Wrapf(err, "parsing param %q", name))
			return 0
		}
		return v
	case reflect.String:
		return value
	default:
		c.paramErrs = append(c.paramErrs, errors.Errorf("unsupported param kind for %q", name))
		return nil
	}
}

// GetQueryFunc reads an optional query parameter and returns a typed
// pointer, nil when the parameter is absent.
func (c *Context) GetQueryFunc(kind reflect.Kind, name string) interface{} {
	value, ok := c.GetQuery(name)

	switch kind {
	case reflect.Int:
		if !ok || value == "" {
			return (*int)(nil)
		}
		v, err := strconv.Atoi(value)
		if err != nil {
			c.queryErrs = append(c.queryErrs, errors.Wrapf(err, "parsing query %q", name))
			return (*int)(nil)
		}
		return &v
	case reflect.Bool:
		if !ok || value == "" {
			return (*bool)(nil)
		}
		v, err := strconv.ParseBool(value)
		if err != nil {
			c.queryErrs = append(c.queryErrs, errors.Wrapf(err, "parsing query %q", name))
			return (*bool)(nil)
		}
		return &v
	case reflect.String:
		if !ok {
			return (*string)(nil)
		}
		return &value
	default:
		c.queryErrs = append(c.queryErrs, errors.Errorf("unsupported query kind for %q", name))
		return nil
	}
}

func (c *Context) ValidParam() error {
	if len(c.paramErrs) == 0 {
		return nil
	}
	return NewRequestError(joinErrs(c.paramErrs), http.StatusBadRequest)
}

func (c *Context) ValidQuery() error {
	if len(c.queryErrs) == 0 {
		return nil
	}
	return NewRequestError(joinErrs(c.queryErrs), http.StatusBadRequest)
}

func joinErrs(errs []error) error {
	msgs := make([]string, 0, len(errs))
	for _, err := range errs {
		msgs = append(msgs, err.Error())
	}
	return errors.New(strings.Join(msgs, "; "))
}

// BindFunc binds the json body into v and verifies that the named
// struct fields are not zero.
func (c *Context) BindFunc(v interface{}, required ...string) error {
	if err := c.ShouldBind(v); err != nil {
		return NewRequestError(errors.Wrap(err, "binding request body"), http.StatusBadRequest)
	}

	value := reflect.ValueOf(v).Elem()
	var fields []FieldError
	for _, name := range required {
		field := value.FieldByName(name)
		if !field.IsValid() || field.IsZero() {
			fields = append(fields, FieldError{Field: name, Error: "required"})
		}
	}
	if len(fields) > 0 {
		return &Error{
			Err:    errors.Errorf("missing required fields: %v", fieldNames(fields)),
			Status: http.StatusBadRequest,
			Fields: fields,
		}
	}

	return nil
}

func fieldNames(fields []FieldError) []string {
	names := make([]string, 0, len(fields))
	for _, f := range fields {
		names = append(names, f.Field)
	}
	return names
}

// Respond writes a json response with the given status.
func (c *Context) Respond(data interface{}, status int) error {
	c.JSON(status, data)
	return nil
}

// RespondBytes writes a raw payload, used for generated documents.
func (c *Context) RespondBytes(contentType, filename string, body []byte) error {
	c.Header("Content-Type", contentType)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(http.StatusOK, contentType, body)
	return nil
}

// RespondError maps known request errors onto their status and hides
// everything else behind a 500.
func (c *Context) RespondError(err error) error {
	if re, ok := IsRequestError(err); ok {
		response := map[string]interface{}{
			"error":  re.Err.Error(),
			"status": false,
		}
		if len(re.Fields) > 0 {
			response["fields"] = re.Fields
		}
		c.JSON(re.Status, response)
		return nil
	}

	c.JSON(http.StatusInternalServerError, map[string]interface{}{
		"error":  "internal server error",
		"status": false,
	})
	return err
}
