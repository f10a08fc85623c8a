package repair

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestRepairLeavesCleanTextAlone(t *testing.T) {
	r := NewRepairer(nil, nil)
	for _, text := range []string{
		"",
		"SG Einheit Oberweißbach",
		"Thüringenliga Süd",
		"VfB 91 Suhl II",
	} {
		if got := r.Repair(context.Background(), text); got != text {
			t.Errorf("Repair(%q) = %q, want unchanged", text, got)
		}
	}
}

func TestRepairRuleTable(t *testing.T) {
	r := NewRepairer(nil, nil)
	tests := []struct {
		in   string
		want string
	}{
		{"SG Einheit Oberwei�bach", "SG Einheit Oberweißbach"},
		{"Th�ringenliga S�d", "Thüringenliga Süd"},
		{"VV 70 P��neck", "VV 70 Pößneck"},
		{"Sporthalle an der Bahnhofstra�e", "Sporthalle an der Bahnhofstraße"},
		{"Schiedsgericht: M�ller", "Schiedsgericht: Müller"},
	}
	for _, tt := range tests {
		if got := r.Repair(context.Background(), tt.in); got != tt.want {
			t.Errorf("Repair(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRepairFallbackIsEszett(t *testing.T) {
	r := NewRepairer(nil, nil)
	if got := r.Repair(context.Background(), "Gru� an alle"); got != "Gruß an alle" {
		t.Errorf("Repair = %q, want %q", got, "Gruß an alle")
	}
}

func TestRepairExtraRules(t *testing.T) {
	extra := []Rule{{Bad: "G�schwitz", Good: "Göschwitz"}}
	r := NewRepairer(extra, nil)
	if got := r.Repair(context.Background(), "SV G�schwitz"); got != "SV Göschwitz" {
		t.Errorf("Repair = %q, want %q", got, "SV Göschwitz")
	}
}

func TestRepairNeverLeavesMarkers(t *testing.T) {
	r := NewRepairer(nil, nil)
	inputs := []string{
		"�",
		"A�B�C",
		"Oberwei�bach gegen P��neck in Th�ringen",
		"v�llig unbekannter Text �",
	}
	for _, in := range inputs {
		got := r.Repair(context.Background(), in)
		if strings.Contains(got, Marker) {
			t.Errorf("Repair(%q) = %q still contains a marker", in, got)
		}
	}
}

func TestRepairIdempotent(t *testing.T) {
	r := NewRepairer(nil, nil)
	inputs := []string{
		"SG Einheit Oberwei�bach",
		"Stra�e � Ecke",
		"schon sauber",
	}
	for _, in := range inputs {
		once := r.Repair(context.Background(), in)
		twice := r.Repair(context.Background(), once)
		if once != twice {
			t.Errorf("Repair not idempotent for %q: %q then %q", in, once, twice)
		}
	}
}

func TestRepairRemoteCorrector(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		calls++
		if req.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", req.Method)
		}
		if got := req.Header.Get("Authorization"); got != "Bearer secret" {
			t.Errorf("Authorization = %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"text":"SV Schott Jena"}`))
	}))
	defer srv.Close()

	corrector := NewRemoteCorrector(srv.URL, "secret", 600, srv.Client())
	r := NewRepairer(nil, corrector)

	for i := 0; i < 3; i++ {
		if got := r.Repair(context.Background(), "SV Sch�tt Jena"); got != "SV Schott Jena" {
			t.Fatalf("Repair = %q, want remote result", got)
		}
	}
	if calls != 1 {
		t.Errorf("remote called %d times, want 1 (cached afterwards)", calls)
	}
}

func TestRepairRemoteFailureFallsBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	corrector := NewRemoteCorrector(srv.URL, "", 600, srv.Client())
	r := NewRepairer(nil, corrector)

	if got := r.Repair(context.Background(), "Th�ringenliga"); got != "Thüringenliga" {
		t.Errorf("Repair = %q, want local rule result", got)
	}
}

func TestRepairRemoteResultStillBroken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"text":"Th�ringenliga"}`))
	}))
	defer srv.Close()

	corrector := NewRemoteCorrector(srv.URL, "", 600, srv.Client())
	r := NewRepairer(nil, corrector)

	// a remote answer that still contains markers is not an answer
	if got := r.Repair(context.Background(), "Th�ringenliga"); got != "Thüringenliga" {
		t.Errorf("Repair = %q, want local rule result", got)
	}
}

func TestRemoteCorrectorRequestShape(t *testing.T) {
	var gotBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		raw, _ := io.ReadAll(req.Body)
		gotBody = string(raw)
		w.Write([]byte(`{"text":"ok"}`))
	}))
	defer srv.Close()

	corrector := NewRemoteCorrector(srv.URL, "", 600, srv.Client())
	if _, err := corrector.Correct(context.Background(), "kaputt"); err != nil {
		t.Fatalf("Correct returned error: %v", err)
	}
	if !strings.Contains(gotBody, `"text":"kaputt"`) || !strings.Contains(gotBody, `"language":"de"`) {
		t.Errorf("request body = %s", gotBody)
	}
}
