package router

import (
	"database/sql"
	"net/http"
	"os"

	mem "vet-practice-manager/internal/adapters/vetapi/memory"
	pg "vet-practice-manager/internal/adapters/vetapi/postgres"
	"vet-practice-manager/internal/adapters/vetapi/remote"
	"vet-practice-manager/internal/cache"
	"vet-practice-manager/internal/domain/clinics"
	"vet-practice-manager/internal/domain/healthrecords"
	"vet-practice-manager/internal/domain/patients"
	"vet-practice-manager/internal/domain/users"
	"vet-practice-manager/internal/domain/vaccinations"
	"vet-practice-manager/internal/middleware"
	"vet-practice-manager/internal/platform/logger"
	"vet-practice-manager/internal/ports/auth"

	_ "vet-practice-manager/docs"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Backends agrupa las cinco colecciones del API de la práctica. Sirve para
// inyectar un backend armado a mano (tests) en lugar del que resuelve env.
type Backends struct {
	Clinics      clinics.API
	Users        users.API
	Patients     patients.API
	Records      healthrecords.API
	Vaccinations vaccinations.API
}

type Options struct {
	AuthVerifier auth.AuthVerifier // puede ser nil (modo dev)

	// Opcional: backend explícito. Si no viene, se resuelve por env:
	// VET_API_BASE_URL > DB_DSN > in-memory.
	Backends *Backends

	// Opcional: si viene, usa Postgres directo.
	DB *sql.DB

	Log logger.Logger
}

func NewRouter(opts Options) http.Handler {
	log := opts.Log
	if log == nil {
		log = logger.NewFromEnv()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	r.Use(middleware.AuthContext(opts.AuthVerifier))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	backends := resolveBackends(opts, log)

	store := cache.NewStore()
	coord := cache.NewCoordinator(store)

	// Services por colección: lectura cacheada + mutaciones coordinadas.
	clinicsSvc := clinics.NewService(backends.Clinics, store, coord)
	usersSvc := users.NewService(backends.Users, store, coord)
	patientsSvc := patients.NewService(backends.Patients, store, coord)
	recordsSvc := healthrecords.NewService(backends.Records, store, coord)
	vaccinationsSvc := vaccinations.NewService(backends.Vaccinations, store, coord)

	// Rutas por colección
	clinics.RegisterRoutes(r, clinicsSvc)
	users.RegisterRoutes(r, usersSvc)
	patients.RegisterRoutes(r, patientsSvc)
	healthrecords.RegisterRoutes(r, recordsSvc)
	vaccinations.RegisterRoutes(r, vaccinationsSvc)

	return r
}

func resolveBackends(opts Options, log logger.Logger) Backends {
	if opts.Backends != nil {
		return *opts.Backends
	}

	if base := os.Getenv("VET_API_BASE_URL"); base != "" {
		c, err := remote.NewClient(remote.Config{
			BaseURL: base,
			APIKey:  os.Getenv("VET_API_KEY"),
		})
		if err == nil {
			log.Info("using remote backend", map[string]any{"base_url": base})
			return Backends{
				Clinics:      c.Clinics(),
				Users:        c.Users(),
				Patients:     c.Patients(),
				Records:      c.Records(),
				Vaccinations: c.Vaccinations(),
			}
		}
		log.Warn("remote backend not usable, falling back", map[string]any{"error": err.Error()})
	}

	// Si no te pasan DB explícita, intenta por env (para dev/handoff)
	db := opts.DB
	if db == nil {
		if dsn := os.Getenv("DB_DSN"); dsn != "" {
			opened, err := pg.Open(dsn)
			if err == nil {
				db = opened
			} else {
				log.Warn("postgres not reachable, falling back", map[string]any{"error": err.Error()})
			}
		}
	}

	if db != nil {
		log.Info("using postgres backend", nil)
		return Backends{
			Clinics:      pg.NewClinicsRepo(db),
			Users:        pg.NewUsersRepo(db),
			Patients:     pg.NewPatientsRepo(db),
			Records:      pg.NewRecordsRepo(db),
			Vaccinations: pg.NewVaccinationsRepo(db),
		}
	}

	log.Info("using in-memory backend", nil)
	b := mem.New()
	return Backends{
		Clinics:      b.Clinics(),
		Users:        b.Users(),
		Patients:     b.Patients(),
		Records:      b.Records(),
		Vaccinations: b.Vaccinations(),
	}
}
