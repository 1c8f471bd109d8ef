// seed_operator crea o actualiza cuentas de operadores del back-office.
//
// Uso:
//
//	go run ./cmd/seed_operator -email ops@ptc.pe -name "Operaciones" -role OPERATIONS
//	go run ./cmd/seed_operator -csv operadores.csv [-latin1]
//
// La contraseña de una cuenta individual se lee de OPERATOR_PASSWORD. El CSV lleva las
// columnas email,nombre,rol,contraseña; -latin1 para archivos exportados desde Excel en ISO-8859-1.
package main

import (
	"context"
	"encoding/csv"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/ptc-travel/backoffice/internal/application/auth"
	"github.com/ptc-travel/backoffice/internal/domain/entity"
	"github.com/ptc-travel/backoffice/internal/infrastructure/postgres"
	"github.com/ptc-travel/backoffice/pkg/config"
	"github.com/ptc-travel/backoffice/pkg/logger"
)

type operatorRow struct {
	email, name, role, password string
}

func main() {
	email := flag.String("email", "", "email del operador")
	name := flag.String("name", "", "nombre visible")
	role := flag.String("role", string(entity.RoleOperations), "rol (SALES, COUNTER, ACCOUNTING, OPERATIONS, SUPERADMIN, SUPPORT)")
	inactive := flag.Bool("inactive", false, "crear la cuenta deshabilitada")
	csvPath := flag.String("csv", "", "archivo CSV con email,nombre,rol,contraseña")
	latin1 := flag.Bool("latin1", false, "el CSV está en ISO-8859-1")
	flag.Parse()

	var rows []operatorRow
	var err error
	if *csvPath != "" {
		rows, err = readCSV(*csvPath, *latin1)
	} else {
		rows = []operatorRow{{email: *email, name: *name, role: *role, password: os.Getenv("OPERATOR_PASSWORD")}}
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leer operadores: %v\n", err)
		os.Exit(1)
	}

	ops := make([]*entity.Operator, 0, len(rows))
	for i, r := range rows {
		op, err := toOperator(r, !*inactive)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Operador %d (%s): %v\n", i+1, r.email, err)
			os.Exit(1)
		}
		ops = append(ops, op)
	}

	log := logger.New(logger.Config{Env: "development", Level: "info"})
	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, config.LoadDB())
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()
	if err := postgres.NewMigrator(pool, log).Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}

	repo := postgres.NewOperatorRepository(pool)
	for _, op := range ops {
		if err := repo.Upsert(ctx, op); err != nil {
			log.Fatal().Err(err).Str("email", op.Email).Msg("guardar operador")
		}
		log.Info().Str("id", op.ID).Str("email", op.Email).Str("role", string(op.Role)).Msg("operador guardado")
	}
}

func toOperator(r operatorRow, active bool) (*entity.Operator, error) {
	email := strings.ToLower(strings.TrimSpace(r.email))
	if email == "" {
		return nil, errors.New("email requerido")
	}
	role := entity.StaffRole(strings.ToUpper(strings.TrimSpace(r.role)))
	if !role.Valid() {
		return nil, fmt.Errorf("rol inválido %q", r.role)
	}
	hash, err := auth.HashPassword(r.password)
	if err != nil {
		return nil, err
	}
	name := strings.TrimSpace(r.name)
	if name == "" {
		name, _, _ = strings.Cut(email, "@")
	}
	return &entity.Operator{
		UserName:     name,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		IsActive:     active,
	}, nil
}

func readCSV(path string, latin1 bool) ([]operatorRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var in io.Reader = f
	if latin1 {
		in = transform.NewReader(f, charmap.ISO8859_1.NewDecoder())
	}
	cr := csv.NewReader(in)
	cr.FieldsPerRecord = 4
	cr.TrimLeadingSpace = true

	var rows []operatorRow
	for line := 1; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		// encabezado opcional
		if line == 1 && strings.EqualFold(rec[0], "email") {
			continue
		}
		rows = append(rows, operatorRow{email: rec[0], name: rec[1], role: rec[2], password: rec[3]})
	}
	if len(rows) == 0 {
		return nil, errors.New("el archivo no tiene operadores")
	}
	return rows, nil
}
