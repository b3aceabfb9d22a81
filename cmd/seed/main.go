// seed carga en PostgreSQL el padrón de unidades y residentes exportado por la administración.
//
// Uso: go run ./cmd/seed [ruta/padron.csv]
// Por defecto busca padron.csv en el directorio actual. Usa la misma configuración que la API
// (DATABASE_URL o DB_*) y aplica el esquema antes de cargar.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jhoicas/condominio-api/internal/infrastructure/padron"
	"github.com/jhoicas/condominio-api/internal/infrastructure/postgres"
	"github.com/jhoicas/condominio-api/pkg/config"
)

func main() {
	path := "padron.csv"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	p, err := padron.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leer padrón: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuración: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Conexión a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool); err != nil {
		fmt.Fprintf(os.Stderr, "Esquema: %v\n", err)
		os.Exit(1)
	}

	err = postgres.NewTxRunner(pool).RunPadron(ctx, func(repo *postgres.PadronRepo) error {
		for _, u := range p.Unidades {
			if err := repo.UpsertUnidad(ctx, u); err != nil {
				return err
			}
		}
		for _, r := range p.Residentes {
			if err := repo.UpsertResidente(ctx, r); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar padrón: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Cargado %s: %d unidades, %d residentes\n", path, len(p.Unidades), len(p.Residentes))
}
