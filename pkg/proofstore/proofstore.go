// Package proofstore es el almacén de artefactos de comprobantes de
// pago: un bucket respaldado en disco cuyos objetos se sirven como
// archivos estáticos bajo una URL pública.
package proofstore

import (
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"
)

// BucketPaymentProofs es el bucket de comprobantes de pago móvil.
const BucketPaymentProofs = "payment-proofs"

// Extensiones probadas por Lookup cuando la referencia guardada no
// trae extensión o el archivo exacto no aparece.
var lookupExtensions = []string{"jpg", "jpeg", "png", "webp", "gif", "bmp", "svg"}

// Store guarda y resuelve artefactos dentro de baseDir, exponiéndolos
// bajo publicBase (por ejemplo /uploads).
type Store struct {
	baseDir    string
	publicBase string
}

// New crea un Store. No toca el disco hasta el primer Save.
func New(baseDir, publicBase string) *Store {
	return &Store{baseDir: baseDir, publicBase: strings.TrimRight(publicBase, "/")}
}

// GenerateName deriva el nombre único de un comprobante a partir del
// instante actual y la extensión del archivo original.
func GenerateName(originalName string, now time.Time) string {
	ext := strings.ToLower(filepath.Ext(originalName))
	return fmt.Sprintf("payment-proof-%d%s", now.UnixMilli(), ext)
}

// Save escribe el contenido bajo bucket/filename y devuelve la ruta
// pública del objeto guardado.
func (s *Store) Save(bucket, filename string, r io.Reader) (string, error) {
	dir := filepath.Join(s.baseDir, bucket)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("no se pudo crear el bucket %s: %w", bucket, err)
	}

	dst, err := os.Create(filepath.Join(dir, filename))
	if err != nil {
		return "", fmt.Errorf("no se pudo crear el archivo %s: %w", filename, err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, r); err != nil {
		return "", fmt.Errorf("no se pudo escribir el archivo %s: %w", filename, err)
	}
	return s.publicURL(bucket, filename), nil
}

// Lookup resuelve la URL pública de un artefacto. Prueba primero el
// nombre tal cual; si no existe (o no trae extensión) intenta con cada
// extensión conocida. Un comprobante ausente no es un error: el pago en
// efectivo no tiene comprobante.
func (s *Store) Lookup(bucket, name string) (string, bool) {
	if name == "" {
		return "", false
	}
	// La referencia guardada puede ser una ruta pública completa.
	name = path.Base(name)

	if strings.Contains(name, ".") && s.exists(bucket, name) {
		return s.publicURL(bucket, name), true
	}
	base := strings.TrimSuffix(name, filepath.Ext(name))
	for _, ext := range lookupExtensions {
		candidate := base + "." + ext
		if s.exists(bucket, candidate) {
			return s.publicURL(bucket, candidate), true
		}
	}
	return "", false
}

func (s *Store) exists(bucket, name string) bool {
	info, err := os.Stat(filepath.Join(s.baseDir, bucket, name))
	return err == nil && !info.IsDir()
}

func (s *Store) publicURL(bucket, filename string) string {
	return s.publicBase + "/" + bucket + "/" + filename
}
