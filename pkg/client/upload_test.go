package client

import (
	"context"
	"net/http"
	"os"
	"path/filepath"
	"testing"
)

func TestUploadSubmitsMultipart(t *testing.T) {
	dir := t.TempDir()
	pdf := filepath.Join(dir, "MSCU1234567.pdf")
	if err := os.WriteFile(pdf, []byte("%PDF-1.4 fake"), 0o600); err != nil {
		t.Fatal(err)
	}

	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/upload" || r.Method != http.MethodPost {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("parse multipart: %v", err)
		}
		f, header, err := r.FormFile("pdf")
		if err != nil {
			t.Errorf("missing pdf field: %v", err)
		} else {
			f.Close()
			if header.Filename != "MSCU1234567.pdf" {
				t.Errorf("filename = %q", header.Filename)
			}
		}
		if got := r.FormValue("port"); got != "Valparaíso" {
			t.Errorf("port field = %q", got)
		}
		if _, ok := r.MultipartForm.Value["notes"]; ok {
			t.Error("empty notes field should be omitted")
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":true,"bl":"MSCU1234567","date":"2024-03-01","port":"Valparaíso","items":2}`))
	}))

	res, err := c.Upload(context.Background(), UploadRequest{Path: pdf, Port: "Valparaíso"})
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}
	if res.BL != "MSCU1234567" || res.Date != "2024-03-01" || res.Items != 2 {
		t.Fatalf("result = %+v", res)
	}
}

func TestLoginCapturesSessionCookie(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/login", func(w http.ResponseWriter, r *http.Request) {
		if r.FormValue("username") != "admin" || r.FormValue("password") != "pw" {
			w.Header().Set("Content-Type", "text/html")
			_, _ = w.Write([]byte("<html>bad credentials</html>"))
			return
		}
		http.SetCookie(w, &http.Cookie{Name: "session", Value: "abc123"})
		http.Redirect(w, r, "/admin", http.StatusFound)
	})
	c, _ := newTestClient(t, mux)

	cookie, err := c.Login(context.Background(), "admin", "pw")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if cookie != "session=abc123" {
		t.Fatalf("cookie = %q", cookie)
	}

	if _, err := c.Login(context.Background(), "admin", "wrong"); err == nil {
		t.Fatal("bad credentials should error")
	}
}

func TestRequestsCarryCookie(t *testing.T) {
	var gotCookie string
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotCookie = r.Header.Get("Cookie")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	}))

	c.SetCookie("session=abc123")
	if _, err := c.LoadEvents(context.Background()); err != nil {
		t.Fatalf("LoadEvents: %v", err)
	}
	if gotCookie != "session=abc123" {
		t.Fatalf("cookie header = %q", gotCookie)
	}
}
