package proofstore

import (
	"strings"
	"testing"
	"time"
)

func TestGenerateName(t *testing.T) {
	now := time.UnixMilli(1749561600000)
	got := GenerateName("comprobante.PNG", now)
	want := "payment-proof-1749561600000.png"
	if got != want {
		t.Errorf("GenerateName = %q, se esperaba %q", got, want)
	}

	// Sin extensión original, el nombre queda sin extensión y Lookup
	// la adivina después.
	if got := GenerateName("comprobante", now); got != "payment-proof-1749561600000" {
		t.Errorf("GenerateName sin extensión = %q", got)
	}
}

func TestSaveAndLookup(t *testing.T) {
	store := New(t.TempDir(), "/uploads")

	url, err := store.Save(BucketPaymentProofs, "payment-proof-123.png", strings.NewReader("imagen"))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if url != "/uploads/payment-proofs/payment-proof-123.png" {
		t.Errorf("URL pública inesperada: %q", url)
	}

	got, ok := store.Lookup(BucketPaymentProofs, "payment-proof-123.png")
	if !ok || got != url {
		t.Errorf("Lookup nombre exacto = (%q, %v)", got, ok)
	}
}

func TestLookupGuessesExtension(t *testing.T) {
	store := New(t.TempDir(), "/uploads")
	if _, err := store.Save(BucketPaymentProofs, "payment-proof-9.webp", strings.NewReader("x")); err != nil {
		t.Fatal(err)
	}

	// Referencia guardada sin extensión.
	got, ok := store.Lookup(BucketPaymentProofs, "payment-proof-9")
	if !ok || !strings.HasSuffix(got, "payment-proof-9.webp") {
		t.Errorf("Lookup sin extensión = (%q, %v)", got, ok)
	}

	// Referencia guardada como ruta pública completa.
	got, ok = store.Lookup(BucketPaymentProofs, "/uploads/payment-proofs/payment-proof-9.webp")
	if !ok || !strings.HasSuffix(got, "payment-proof-9.webp") {
		t.Errorf("Lookup con ruta completa = (%q, %v)", got, ok)
	}
}

func TestLookupAbsentIsNotAnError(t *testing.T) {
	store := New(t.TempDir(), "/uploads")
	if _, ok := store.Lookup(BucketPaymentProofs, "payment-proof-inexistente"); ok {
		t.Error("un comprobante ausente debe reportarse como no encontrado, no inventarse")
	}
	if _, ok := store.Lookup(BucketPaymentProofs, ""); ok {
		t.Error("referencia vacía no debe resolver nada")
	}
}
