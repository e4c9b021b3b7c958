package router

import (
	"database/sql"
	"net/http"

	_ "pet-identifier/docs"

	mem "pet-identifier/internal/adapters/storage/memory"
	pg "pet-identifier/internal/adapters/storage/postgres"
	"pet-identifier/internal/domain/catalog"
	"pet-identifier/internal/domain/identify"
	"pet-identifier/internal/domain/pets"
	"pet-identifier/internal/domain/system"
	"pet-identifier/internal/domain/users"
	"pet-identifier/internal/middleware"
	"pet-identifier/internal/platform/logger"
	"pet-identifier/internal/ports/auth"
	"pet-identifier/internal/ports/classifier"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"
)

// MaxBodyBytes limita los bodies JSON y multipart.
const MaxBodyBytes = 10 << 20

type Options struct {
	Logger logger.Logger

	// Opcional: si viene, usa Postgres. Si no, in-memory.
	DB *sql.DB

	Classifier    classifier.ImageClassifier
	MinImageBytes int

	// Pepper y costo de bcrypt para contraseñas.
	PepperSecret string
	BcryptRounds int

	// AuthVerifier/TokenIssuer pueden ser nil (modo dev, se confía en user_id).
	AuthVerifier auth.AuthVerifier
	TokenIssuer  auth.TokenIssuer

	// Orígenes permitidos por CORS.
	AllowedOrigins []string
}

func NewRouter(opts Options) http.Handler {
	lg := opts.Logger
	if lg == nil {
		lg = logger.Noop()
	}

	r := chi.NewRouter()

	r.Use(middleware.Trace)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLog(lg))
	r.Use(middleware.Recover(lg))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", middleware.TraceHeader},
		ExposedHeaders:   []string{middleware.TraceHeader},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	r.Use(chimw.RequestSize(MaxBodyBytes))

	r.Use(middleware.AuthContext(opts.AuthVerifier))

	var (
		userRepo    users.Repository
		petRepo     pets.Repository
		catalogRepo catalog.Repository
		systemRepo  system.Repository
	)

	if opts.DB != nil {
		userRepo = pg.NewUsersRepo(opts.DB)
		petRepo = pg.NewPetsRepo(opts.DB)
		catalogRepo = pg.NewCatalogRepo(opts.DB)
		systemRepo = pg.NewSystemRepo(opts.DB)
	} else {
		memUsers := mem.NewUserRepo()
		userRepo = memUsers
		petRepo = mem.NewPetRepo(memUsers)
		catalogRepo = mem.NewCatalogRepo()
		systemRepo = mem.NewSystemRepo()
	}

	// Services por módulo
	usersSvc := users.NewService(userRepo, users.Options{
		Pepper:       opts.PepperSecret,
		BcryptRounds: opts.BcryptRounds,
		Issuer:       opts.TokenIssuer,
		Logger:       lg,
	})
	petsSvc := pets.NewService(petRepo, lg)
	catalogSvc := catalog.NewService(catalogRepo)
	identifySvc := identify.NewService(opts.Classifier, opts.MinImageBytes, lg)

	// Rutas por módulo
	system.RegisterRoutes(r, systemRepo, lg)
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	r.Route("/api", func(api chi.Router) {
		catalog.RegisterRoutes(api, catalogSvc, lg)
		users.RegisterRoutes(api, usersSvc, lg)
		pets.RegisterRoutes(api, petsSvc, lg)
		identify.RegisterRoutes(api, identifySvc, lg)
	})

	return r
}
