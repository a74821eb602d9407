package forms

import (
	"context"
	"net/http"
	"testing"

	"store-admin/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingClient struct {
	calls    []string
	err      error
	onCreate func()
}

func (c *recordingClient) Create(ctx context.Context, storeID, resource string, payload any) error {
	c.calls = append(c.calls, "create "+resource)
	if c.onCreate != nil {
		c.onCreate()
	}
	return c.err
}

func (c *recordingClient) Update(ctx context.Context, storeID, resource, entityID string, payload any) error {
	c.calls = append(c.calls, "update "+resource+"/"+entityID)
	return c.err
}

func (c *recordingClient) Delete(ctx context.Context, storeID, resource, entityID string) error {
	c.calls = append(c.calls, "delete "+resource+"/"+entityID)
	return c.err
}

type recordingNotifier struct {
	successes []string
	errors    []string
}

func (n *recordingNotifier) Success(message string) { n.successes = append(n.successes, message) }
func (n *recordingNotifier) Error(message string)   { n.errors = append(n.errors, message) }

type recordingNavigator struct {
	views []string
}

func (n *recordingNavigator) NavigateAndRefresh(view string) { n.views = append(n.views, view) }

func newTestController(resource Resource) (*Controller, *recordingClient, *recordingNotifier, *recordingNavigator) {
	client := &recordingClient{}
	notifier := &recordingNotifier{}
	navigator := &recordingNavigator{}
	return NewController(client, notifier, navigator, resource, "store-1"), client, notifier, navigator
}

func newTestEditController(resource Resource, entityID string) (*Controller, *recordingClient, *recordingNotifier, *recordingNavigator) {
	client := &recordingClient{}
	notifier := &recordingNotifier{}
	navigator := &recordingNavigator{}
	return NewEditController(client, notifier, navigator, resource, "store-1", entityID), client, notifier, navigator
}

func TestSubmit_CreateSuccess(t *testing.T) {
	c, client, notifier, navigator := newTestController(Billboards)

	err := c.Submit(context.Background(), domain.BillboardInput{
		Label:    "Summer",
		ImageURL: "https://cdn.example.com/summer.jpg",
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"create billboards"}, client.calls)
	assert.Equal(t, []string{"Billboard created."}, notifier.successes)
	assert.Equal(t, []string{"/store-1/billboards"}, navigator.views)
	assert.Equal(t, StateIdle, c.State())
}

func TestSubmit_EditSuccess(t *testing.T) {
	c, client, notifier, _ := newTestEditController(Sizes, "size-1")

	err := c.Submit(context.Background(), domain.SizeInput{Name: "Medium", Value: "M"})

	require.NoError(t, err)
	assert.Equal(t, []string{"update sizes/size-1"}, client.calls)
	assert.Equal(t, []string{"Size updated."}, notifier.successes)
}

func TestSubmit_InvalidInputNeverReachesNetwork(t *testing.T) {
	c, client, notifier, navigator := newTestController(Colors)

	// "fff" is missing the leading '#'
	err := c.Submit(context.Background(), domain.ColorInput{Name: "White", Value: "fff"})

	require.Error(t, err)
	assert.Empty(t, client.calls, "invalid payload must not hit the API")
	assert.Empty(t, navigator.views)
	require.Len(t, notifier.errors, 1)
	assert.Contains(t, notifier.errors[0], "Value")
	assert.Equal(t, StateIdle, c.State())
}

func TestSubmit_ProductWithoutImagesIsRejectedLocally(t *testing.T) {
	c, client, _, _ := newTestController(Products)

	err := c.Submit(context.Background(), domain.ProductInput{
		Name:       "Shirt",
		Price:      decimal.NewFromInt(20),
		CategoryID: "7b5a1a1e-0b0c-4f7a-9c6e-3f6a1d2b3c4d",
		SizeID:     "7b5a1a1e-0b0c-4f7a-9c6e-3f6a1d2b3c4e",
		ColorID:    "7b5a1a1e-0b0c-4f7a-9c6e-3f6a1d2b3c4f",
		Images:     nil,
	})

	require.Error(t, err)
	assert.Empty(t, client.calls)
}

func TestSubmit_ServerErrorShowsGenericToast(t *testing.T) {
	c, client, notifier, navigator := newTestController(Billboards)
	client.err = &StatusError{StatusCode: http.StatusInternalServerError, Message: "boom"}

	err := c.Submit(context.Background(), domain.BillboardInput{
		Label:    "Summer",
		ImageURL: "https://cdn.example.com/summer.jpg",
	})

	require.Error(t, err)
	assert.Equal(t, []string{"Something went wrong."}, notifier.errors)
	assert.Empty(t, navigator.views)
	assert.Equal(t, StateIdle, c.State())
}

func TestDelete_OnlyReachableInEditMode(t *testing.T) {
	c, _, _, _ := newTestController(Categories)

	assert.ErrorIs(t, c.RequestDelete(), ErrNotEditing)
}

func TestDelete_ConfirmationFlow(t *testing.T) {
	c, client, notifier, navigator := newTestEditController(Categories, "cat-1")

	require.NoError(t, c.RequestDelete())
	assert.Equal(t, StateConfirmingDelete, c.State())

	require.NoError(t, c.ConfirmDelete(context.Background()))
	assert.Equal(t, []string{"delete categories/cat-1"}, client.calls)
	assert.Equal(t, []string{"Category deleted."}, notifier.successes)
	assert.Equal(t, []string{"/store-1/categories"}, navigator.views)
	assert.Equal(t, StateIdle, c.State())
}

func TestDelete_CancelReturnsToIdle(t *testing.T) {
	c, client, _, _ := newTestEditController(Colors, "color-1")

	require.NoError(t, c.RequestDelete())
	require.NoError(t, c.CancelDelete())
	assert.Equal(t, StateIdle, c.State())
	assert.Empty(t, client.calls)

	// Cancel is only meaningful while confirming
	assert.ErrorIs(t, c.CancelDelete(), ErrBusy)
}

func TestDelete_ConflictSurfacesResourceHint(t *testing.T) {
	c, _, notifier, navigator := newTestEditController(Billboards, "bb-1")
	client := &recordingClient{err: &StatusError{StatusCode: http.StatusConflict, Message: "conflict"}}
	c.client = client

	require.NoError(t, c.RequestDelete())
	err := c.ConfirmDelete(context.Background())

	require.Error(t, err)
	assert.Equal(t, []string{Billboards.DeleteConflictHint}, notifier.errors)
	assert.Empty(t, navigator.views)
	// The dialog closes regardless of outcome
	assert.Equal(t, StateIdle, c.State())
}

func TestSubmit_SingleFlight(t *testing.T) {
	c, _, _, _ := newTestEditController(Sizes, "size-1")

	// Drive the overlap through the client callback: while Update runs the
	// controller is Submitting and must reject re-entrant transitions.
	overlapping := &overlapClient{controller: c}
	c.client = overlapping

	err := c.Submit(context.Background(), domain.SizeInput{Name: "Large", Value: "L"})
	require.NoError(t, err)

	assert.ErrorIs(t, overlapping.submitErr, ErrBusy)
	assert.ErrorIs(t, overlapping.deleteErr, ErrBusy)
}

// overlapClient re-enters the controller during an in-flight update to prove
// concurrent transitions are rejected.
type overlapClient struct {
	controller *Controller
	submitErr  error
	deleteErr  error
}

func (c *overlapClient) Create(ctx context.Context, storeID, resource string, payload any) error {
	return nil
}

func (c *overlapClient) Update(ctx context.Context, storeID, resource, entityID string, payload any) error {
	c.submitErr = c.controller.Submit(ctx, domain.SizeInput{Name: "Small", Value: "S"})
	c.deleteErr = c.controller.RequestDelete()
	return nil
}

func (c *overlapClient) Delete(ctx context.Context, storeID, resource, entityID string) error {
	return nil
}

func TestSetupPrompt_Transitions(t *testing.T) {
	p := SetupPrompt{}
	assert.False(t, p.IsOpen())

	opened := p.Open()
	assert.True(t, opened.IsOpen())
	assert.False(t, p.IsOpen(), "transitions must not mutate the receiver")

	closed := opened.Close()
	assert.False(t, closed.IsOpen())
	assert.True(t, opened.IsOpen())

	assert.True(t, OpenSetupPrompt().IsOpen())
}
