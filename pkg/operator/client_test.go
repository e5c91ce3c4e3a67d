package operator_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"ordering-kiosk/pkg/operator"
)

func TestOperatorClient(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer kiosk-token" {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"detail": "Not authenticated"}`))
			return
		}

		path := r.URL.Path

		if r.Method == http.MethodPost && path == "/api/v1/operator/data" {
			var req operator.CreateDataEntryRequest
			json.NewDecoder(r.Body).Decode(&req)
			if req.EntryType == "" {
				w.WriteHeader(http.StatusUnprocessableEntity)
				w.Write([]byte(`{"detail": "entry_type is required"}`))
				return
			}
			w.WriteHeader(http.StatusCreated)
			w.Write([]byte(`{
				"entry_id": "3f6c0b1e-9e3f-4f7c-9a40-2f9f6f9a0001",
				"event_id": "3f6c0b1e-9e3f-4f7c-9a40-2f9f6f9a0002",
				"status": "draft",
				"created_at": "2026-08-25T10:00:00"
			}`))
			return
		}

		if r.Method == http.MethodGet && strings.HasPrefix(path, "/api/v1/operator/data/") {
			if strings.HasSuffix(path, "/missing") {
				w.WriteHeader(http.StatusNotFound)
				w.Write([]byte(`{"detail": "Entry not found"}`))
				return
			}
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{
				"entry_id": "3f6c0b1e-9e3f-4f7c-9a40-2f9f6f9a0001",
				"data": {"title": "Coffee restock", "quantity": 5},
				"status": "submitted",
				"created_at": "2026-08-25T10:00:00",
				"updated_at": "2026-08-25T10:05:00",
				"created_by_username": "kiosk"
			}`))
			return
		}

		if r.Method == http.MethodGet && path == "/api/v1/operator/data" {
			if r.URL.Query().Get("status") == "draft" && r.URL.Query().Get("limit") != "10" {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{
				"items": [{"entry_id": "e-1", "data": {}, "status": "draft",
					"created_at": "2026-08-25T10:00:00", "updated_at": "2026-08-25T10:00:00",
					"created_by_username": "kiosk"}],
				"total": 1,
				"limit": 10,
				"offset": 0
			}`))
			return
		}

		if r.Method == http.MethodPost && strings.HasSuffix(path, "/submit") {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{
				"event_id": "3f6c0b1e-9e3f-4f7c-9a40-2f9f6f9a0003",
				"status": "submitted",
				"submitted_at": "2026-08-25T10:10:00"
			}`))
			return
		}

		w.WriteHeader(http.StatusNotFound)
	}))
	defer ts.Close()

	client := operator.NewClient(ts.URL, "kiosk-token")

	t.Run("CreateDataEntry", func(t *testing.T) {
		resp, err := client.CreateDataEntry(context.Background(), operator.CreateDataEntryRequest{
			Data:      map[string]interface{}{"title": "Coffee restock"},
			EntryType: "supply",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.Status != "draft" {
			t.Errorf("expected draft status, got %q", resp.Status)
		}
		if resp.EntryID == "" {
			t.Error("expected an entry_id")
		}
	})

	t.Run("CreateDataEntry backend rejection carries detail", func(t *testing.T) {
		_, err := client.CreateDataEntry(context.Background(), operator.CreateDataEntryRequest{
			Data: map[string]interface{}{"title": "x"},
		})
		if err == nil {
			t.Fatal("expected error from 422 response")
		}
		var apiErr *operator.APIError
		if !errors.As(err, &apiErr) {
			t.Fatalf("expected APIError, got %T", err)
		}
		if apiErr.Detail != "entry_type is required" {
			t.Errorf("expected the backend detail verbatim, got %q", apiErr.Detail)
		}
		if err.Error() != "entry_type is required" {
			t.Errorf("Error() must surface the detail, got %q", err.Error())
		}
	})

	t.Run("GetDataEntry", func(t *testing.T) {
		entry, err := client.GetDataEntry(context.Background(), "3f6c0b1e-9e3f-4f7c-9a40-2f9f6f9a0001")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if entry.Status != "submitted" {
			t.Errorf("expected submitted, got %q", entry.Status)
		}
		if entry.Data["title"] != "Coffee restock" {
			t.Errorf("unexpected data: %+v", entry.Data)
		}
	})

	t.Run("GetDataEntry not found", func(t *testing.T) {
		_, err := client.GetDataEntry(context.Background(), "missing")
		var apiErr *operator.APIError
		if !errors.As(err, &apiErr) {
			t.Fatalf("expected APIError, got %v", err)
		}
		if apiErr.StatusCode != http.StatusNotFound || apiErr.Detail != "Entry not found" {
			t.Errorf("unexpected APIError: %+v", apiErr)
		}
	})

	t.Run("ListDataEntries", func(t *testing.T) {
		resp, err := client.ListDataEntries(context.Background(), operator.ListDataEntriesRequest{
			Status: "draft",
			Limit:  10,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.Total != 1 || len(resp.Items) != 1 {
			t.Errorf("unexpected page: %+v", resp)
		}
	})

	t.Run("SubmitForApproval", func(t *testing.T) {
		resp, err := client.SubmitForApproval(context.Background(), "3f6c0b1e-9e3f-4f7c-9a40-2f9f6f9a0001")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.Status != "submitted" {
			t.Errorf("expected submitted, got %q", resp.Status)
		}
	})

	t.Run("missing token is rejected", func(t *testing.T) {
		anon := operator.NewClient(ts.URL, "")
		_, err := anon.GetDataEntry(context.Background(), "e-1")
		var apiErr *operator.APIError
		if !errors.As(err, &apiErr) {
			t.Fatalf("expected APIError, got %v", err)
		}
		if apiErr.StatusCode != http.StatusUnauthorized {
			t.Errorf("expected 401, got %d", apiErr.StatusCode)
		}
	})
}
