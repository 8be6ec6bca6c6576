package provider

import (
	"github.com/vruksha/storefront/internal/config"
	"github.com/vruksha/storefront/internal/models"
	"github.com/vruksha/storefront/internal/queue"
	"github.com/vruksha/storefront/internal/repository"
	"github.com/vruksha/storefront/internal/service"
)

// Container wires repositories and services once at startup; handlers and
// the worker pull what they need from here.
type Container struct {
	Config *config.Config

	UserRepo     repository.UserRepository
	AddressRepo  repository.AddressRepository
	CategoryRepo repository.CategoryRepository
	ProductRepo  repository.ProductRepository
	CartRepo     repository.CartRepository
	OrderRepo    repository.OrderRepository
	SliderRepo   repository.SliderRepository
	PageRepo     repository.PageRepository

	QueueClient *queue.Client

	AuthService     *service.AuthService
	AddressService  *service.AddressService
	CategoryService *service.CategoryService
	ProductService  *service.ProductService
	CartService     *service.CartService
	OrderService    *service.OrderService
	SliderService   *service.SliderService
	PageService     *service.PageService
	HomeService     *service.HomeService
}

// NewContainer builds the full dependency graph.
func NewContainer(cfg *config.Config) *Container {
	c := &Container{Config: cfg}
	c.initRepositories()
	c.QueueClient = queue.NewClient(cfg.Queue)
	c.initServices()
	return c
}

func (c *Container) initRepositories() {
	db := models.DB
	c.UserRepo = repository.NewUserRepository(db)
	c.AddressRepo = repository.NewAddressRepository(db)
	c.CategoryRepo = repository.NewCategoryRepository(db)
	c.ProductRepo = repository.NewProductRepository(db)
	c.CartRepo = repository.NewCartRepository(db)
	c.OrderRepo = repository.NewOrderRepository(db)
	c.SliderRepo = repository.NewSliderRepository(db)
	c.PageRepo = repository.NewPageRepository(db)
}

func (c *Container) initServices() {
	c.AuthService = service.NewAuthService(c.UserRepo, c.Config.JWT, c.Config.Security)
	c.AddressService = service.NewAddressService(c.AddressRepo)
	c.CategoryService = service.NewCategoryService(c.CategoryRepo)
	c.ProductService = service.NewProductService(c.ProductRepo, c.CategoryRepo)
	c.CartService = service.NewCartService(c.CartRepo, c.ProductRepo)
	c.OrderService = service.NewOrderService(c.OrderRepo, c.CartRepo, c.AddressRepo, c.QueueClient)
	c.SliderService = service.NewSliderService(c.SliderRepo)
	c.PageService = service.NewPageService(c.PageRepo)
	c.HomeService = service.NewHomeService(c.ProductService, c.CategoryService, c.SliderService)
}

// Close releases held resources.
func (c *Container) Close() error {
	return c.QueueClient.Close()
}
