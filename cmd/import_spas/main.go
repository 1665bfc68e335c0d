// import_spas carga spas desde un CSV con cabecera nombre,direccion,zona,horario.
// Acepta archivos en UTF-8 o ISO-8859-1 (exportaciones de Excel en Windows).
// Los spas cuyo nombre ya existe entre los activos se omiten.
//
// Uso: go run ./cmd/import_spas ruta/spas.csv
package main

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/jhoicas/belleza-api/internal/application/dto"
	"github.com/jhoicas/belleza-api/internal/application/usecase"
	"github.com/jhoicas/belleza-api/internal/domain"
	"github.com/jhoicas/belleza-api/internal/domain/access"
	"github.com/jhoicas/belleza-api/internal/domain/entity"
	"github.com/jhoicas/belleza-api/internal/infrastructure/postgres"
	"github.com/jhoicas/belleza-api/pkg/config"
	"github.com/jhoicas/belleza-api/pkg/logger"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// importer actúa como admin_principal del sistema.
var importer = access.Principal{UserID: "import_spas", Role: entity.RoleAdminPrincipal}

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "uso: import_spas ruta/spas.csv")
		os.Exit(2)
	}
	raw, err := os.ReadFile(os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir CSV: %v\n", err)
		os.Exit(1)
	}
	rows, err := parseSpas(decodeInput(raw))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leer CSV: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel}).Component("import_spas")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	spaUC := usecase.NewSpaUseCase(
		postgres.NewSpaRepository(pool),
		postgres.NewUserRepository(pool),
		postgres.NewSpaServiceRepository(pool),
		postgres.NewSpaMaterialRepository(pool),
		postgres.NewReviewRepository(pool),
	)

	created, skipped := 0, 0
	for _, in := range rows {
		spa, err := spaUC.Create(ctx, importer, in)
		switch {
		case errors.Is(err, domain.ErrDuplicate), errors.Is(err, domain.ErrInvalidInput):
			skipped++
			log.Warn().Err(err).Str("nombre", in.Name).Msg("fila omitida")
		case err != nil:
			log.Fatal().Err(err).Str("nombre", in.Name).Msg("crear spa")
		default:
			created++
			log.Debug().Str("id", spa.ID).Str("nombre", spa.Name).Msg("spa creado")
		}
	}
	log.Info().Int("creados", created).Int("omitidos", skipped).Msg("importación terminada")
}

// decodeInput devuelve un lector UTF-8: si el contenido no es UTF-8 válido se asume ISO-8859-1.
func decodeInput(raw []byte) io.Reader {
	raw = bytes.TrimPrefix(raw, []byte("\xef\xbb\xbf"))
	if utf8.Valid(raw) {
		return bytes.NewReader(raw)
	}
	return transform.NewReader(bytes.NewReader(raw), charmap.ISO8859_1.NewDecoder())
}

// parseSpas lee el CSV. La cabecera es obligatoria y el orden de columnas libre; acepta ',' o ';'.
func parseSpas(r io.Reader) ([]dto.CreateSpaRequest, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	cr := csv.NewReader(bytes.NewReader(data))
	if firstLine, _, _ := bytes.Cut(data, []byte("\n")); bytes.Count(firstLine, []byte(";")) > bytes.Count(firstLine, []byte(",")) {
		cr.Comma = ';'
	}
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("cabecera: %w", err)
	}
	col := make(map[string]int, len(header))
	for i, h := range header {
		col[strings.ToLower(strings.TrimSpace(h))] = i
	}
	if _, ok := col["nombre"]; !ok {
		return nil, fmt.Errorf("cabecera: falta la columna nombre")
	}
	field := func(rec []string, name string) string {
		i, ok := col[name]
		if !ok || i >= len(rec) {
			return ""
		}
		return strings.TrimSpace(rec[i])
	}

	var out []dto.CreateSpaRequest
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		in := dto.CreateSpaRequest{
			Name:     field(rec, "nombre"),
			Address:  field(rec, "direccion"),
			Zone:     field(rec, "zona"),
			Schedule: field(rec, "horario"),
		}
		if in.Name == "" {
			continue
		}
		out = append(out, in)
	}
	return out, nil
}
