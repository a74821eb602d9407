// Package forms drives the admin's entity forms: one controller covers
// create, edit and delete for every catalog entity, parameterized by a
// Resource descriptor instead of being copied per entity.
//
// The controller validates the same input structs the server validates, so a
// payload that would fail on the server never leaves the client.
package forms

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"store-admin/internal/middleware"

	"github.com/go-playground/validator/v10"
)

// State is the controller's lifecycle state. While Submitting or Deleting all
// inputs are disabled and every other transition is rejected.
type State int

const (
	StateIdle State = iota
	StateSubmitting
	StateConfirmingDelete
	StateDeleting
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSubmitting:
		return "submitting"
	case StateConfirmingDelete:
		return "confirming_delete"
	case StateDeleting:
		return "deleting"
	default:
		return "unknown"
	}
}

// ErrBusy is returned when a transition is requested while a request is in
// flight.
var ErrBusy = errors.New("operation already in progress")

// ErrNotEditing is returned when delete is requested on a form that is not
// bound to an existing entity.
var ErrNotEditing = errors.New("no entity bound to this form")

// Resource describes one entity type to the controller.
type Resource struct {
	// Path is the API path segment, e.g. "billboards".
	Path string
	// DisplayName is the singular label used in toasts, e.g. "Billboard".
	DisplayName string
	// DeleteConflictHint is shown when a delete is rejected because other
	// entities still reference this one.
	DeleteConflictHint string
}

// Resource descriptors for the five catalog entity types.
var (
	Billboards = Resource{
		Path:               "billboards",
		DisplayName:        "Billboard",
		DeleteConflictHint: "Make sure you removed all categories using this billboard first.",
	}
	Categories = Resource{
		Path:               "categories",
		DisplayName:        "Category",
		DeleteConflictHint: "Make sure you removed all products using this category first.",
	}
	Sizes = Resource{
		Path:               "sizes",
		DisplayName:        "Size",
		DeleteConflictHint: "Make sure you removed all products using this size first.",
	}
	Colors = Resource{
		Path:               "colors",
		DisplayName:        "Color",
		DeleteConflictHint: "Make sure you removed all products using this color first.",
	}
	Products = Resource{
		Path:               "products",
		DisplayName:        "Product",
		DeleteConflictHint: "Something went wrong.",
	}
)

// Notifier surfaces toasts to the user. Calls are fire-and-forget.
type Notifier interface {
	Success(message string)
	Error(message string)
}

// Navigator moves the user to a view and refreshes its data.
type Navigator interface {
	NavigateAndRefresh(view string)
}

// Client performs the entity API calls on behalf of the controller.
type Client interface {
	Create(ctx context.Context, storeID, resource string, payload any) error
	Update(ctx context.Context, storeID, resource, entityID string, payload any) error
	Delete(ctx context.Context, storeID, resource, entityID string) error
}

// Controller is the form state machine for one entity form instance.
type Controller struct {
	mu       sync.Mutex
	state    State
	resource Resource
	storeID  string
	entityID string

	client    Client
	notifier  Notifier
	navigator Navigator
	validate  *validator.Validate
}

// NewController builds a controller in create mode. Use NewEditController to
// bind an existing entity.
func NewController(client Client, notifier Notifier, navigator Navigator, resource Resource, storeID string) *Controller {
	return &Controller{
		state:     StateIdle,
		resource:  resource,
		storeID:   storeID,
		client:    client,
		notifier:  notifier,
		navigator: navigator,
		validate:  validator.New(),
	}
}

// NewEditController builds a controller bound to an existing entity; delete
// becomes reachable and a successful submit reads "updated" instead of
// "created".
func NewEditController(client Client, notifier Notifier, navigator Navigator, resource Resource, storeID, entityID string) *Controller {
	c := NewController(client, notifier, navigator, resource, storeID)
	c.entityID = entityID
	return c
}

// State returns the current lifecycle state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// IsEditing reports whether the form is bound to an existing entity.
func (c *Controller) IsEditing() bool {
	return c.entityID != ""
}

// Submit validates the input and creates or updates the entity. Validation
// failures never reach the network.
func (c *Controller) Submit(ctx context.Context, input any) error {
	c.mu.Lock()
	if c.state != StateIdle {
		c.mu.Unlock()
		return ErrBusy
	}
	c.state = StateSubmitting
	c.mu.Unlock()

	defer c.setState(StateIdle)

	if err := c.validate.Struct(input); err != nil {
		message := firstValidationMessage(err)
		c.notifier.Error(message)
		return fmt.Errorf("validation failed: %s", message)
	}

	var err error
	if c.IsEditing() {
		err = c.client.Update(ctx, c.storeID, c.resource.Path, c.entityID, input)
	} else {
		err = c.client.Create(ctx, c.storeID, c.resource.Path, input)
	}
	if err != nil {
		c.notifier.Error("Something went wrong.")
		return err
	}

	if c.IsEditing() {
		c.notifier.Success(c.resource.DisplayName + " updated.")
	} else {
		c.notifier.Success(c.resource.DisplayName + " created.")
	}
	c.navigator.NavigateAndRefresh("/" + c.storeID + "/" + c.resource.Path)
	return nil
}

// RequestDelete opens the delete confirmation. Only an edit form can delete.
func (c *Controller) RequestDelete() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.IsEditing() {
		return ErrNotEditing
	}
	if c.state != StateIdle {
		return ErrBusy
	}
	c.state = StateConfirmingDelete
	return nil
}

// CancelDelete dismisses the confirmation without deleting.
func (c *Controller) CancelDelete() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != StateConfirmingDelete {
		return ErrBusy
	}
	c.state = StateIdle
	return nil
}

// ConfirmDelete performs the delete. The confirmation dialog closes whatever
// the outcome; a conflict surfaces the resource's dependent-entities hint.
func (c *Controller) ConfirmDelete(ctx context.Context) error {
	c.mu.Lock()
	if c.state != StateConfirmingDelete {
		c.mu.Unlock()
		return ErrBusy
	}
	c.state = StateDeleting
	c.mu.Unlock()

	defer c.setState(StateIdle)

	if err := c.client.Delete(ctx, c.storeID, c.resource.Path, c.entityID); err != nil {
		if IsConflict(err) {
			c.notifier.Error(c.resource.DeleteConflictHint)
		} else {
			c.notifier.Error("Something went wrong.")
		}
		return err
	}

	c.notifier.Success(c.resource.DisplayName + " deleted.")
	c.navigator.NavigateAndRefresh("/" + c.storeID + "/" + c.resource.Path)
	return nil
}

func (c *Controller) setState(s State) {
	c.mu.Lock()
	c.state = s
	c.mu.Unlock()
}

// firstValidationMessage renders the first field failure with the same
// wording the server uses for the same input struct.
func firstValidationMessage(err error) string {
	formatted := middleware.FormatValidationErrors(err)
	if len(formatted) == 0 {
		return "Invalid input"
	}
	return formatted[0].Field + ": " + formatted[0].Message
}
