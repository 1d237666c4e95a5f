package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/LeandroDeJesus-S/loja-online/internal/domain/entities"
	domainerrors "github.com/LeandroDeJesus-S/loja-online/internal/domain/errors"
	"github.com/LeandroDeJesus-S/loja-online/internal/domain/repositories"
)

func newCatalogService(productRepo *fakeProductRepo, resizer *fakeResizer) *CatalogService {
	return NewCatalogService(
		productRepo,
		&fakeCategoryRepo{},
		&fakeStockRepo{},
		resizer,
		fakeUnitOfWork{},
		nopLogger{},
	)
}

func TestCatalogServiceCreateProduct(t *testing.T) {
	ctx := context.Background()

	t.Run("deve persistir e derivar o slug a partir do nome", func(t *testing.T) {
		repo := &fakeProductRepo{}
		svc := newCatalogService(repo, &fakeResizer{})

		product, err := svc.CreateProduct(ctx, CreateProductInput{
			Name:        "Tenis Runner",
			Description: "Tenis de corrida",
		})
		if err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}
		if product.Slug != "tenis-runner" {
			t.Errorf("slug esperado 'tenis-runner', obtido '%s'", product.Slug)
		}
		if len(repo.created) != 1 {
			t.Errorf("esperado 1 produto persistido, obtido %d", len(repo.created))
		}
	})

	t.Run("deve redimensionar a thumbnail apos persistir", func(t *testing.T) {
		repo := &fakeProductRepo{}
		resizer := &fakeResizer{}
		svc := newCatalogService(repo, resizer)

		_, err := svc.CreateProduct(ctx, CreateProductInput{
			Name:          "Tenis Runner",
			ThumbnailPath: "/media/tenis.jpg",
		})
		if err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}
		if len(resizer.calls) != 1 {
			t.Fatalf("esperada 1 chamada ao resizer, obtidas %d", len(resizer.calls))
		}
		call := resizer.calls[0]
		if call.path != "/media/tenis.jpg" || call.width != 360 || call.height != 360 {
			t.Errorf("chamada inesperada ao resizer: %+v", call)
		}
	})

	t.Run("nao deve chamar o resizer sem thumbnail", func(t *testing.T) {
		resizer := &fakeResizer{}
		svc := newCatalogService(&fakeProductRepo{}, resizer)

		_, err := svc.CreateProduct(ctx, CreateProductInput{Name: "Tenis Runner"})
		if err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}
		if len(resizer.calls) != 0 {
			t.Errorf("resizer nao deveria ser chamado, obtidas %d chamadas", len(resizer.calls))
		}
	})

	t.Run("deve rejeitar thumbnail com extensao nao suportada", func(t *testing.T) {
		svc := newCatalogService(&fakeProductRepo{}, &fakeResizer{})

		_, err := svc.CreateProduct(ctx, CreateProductInput{
			Name:          "Tenis Runner",
			ThumbnailPath: "/media/tenis.gif",
		})
		if !errors.Is(err, domainerrors.ErrFileExtension) {
			t.Errorf("esperado ErrFileExtension, obtido %v", err)
		}
	})

	t.Run("deve rejeitar thumbnail acima do limite", func(t *testing.T) {
		svc := newCatalogService(&fakeProductRepo{}, &fakeResizer{})

		_, err := svc.CreateProduct(ctx, CreateProductInput{
			Name:          "Tenis Runner",
			ThumbnailPath: "/media/tenis.jpg",
			ThumbnailSize: entities.ProductThumbMaxSize + 1,
		})
		if !errors.Is(err, domainerrors.ErrFileSizeExceeded) {
			t.Errorf("esperado ErrFileSizeExceeded, obtido %v", err)
		}
	})

	t.Run("deve rejeitar descricao acima do limite", func(t *testing.T) {
		svc := newCatalogService(&fakeProductRepo{}, &fakeResizer{})

		_, err := svc.CreateProduct(ctx, CreateProductInput{
			Name:        "Tenis Runner",
			Description: strings.Repeat("a", entities.ProductDescMaxLen+1),
		})
		if !errors.Is(err, domainerrors.ErrInvalidDescription) {
			t.Errorf("esperado ErrInvalidDescription, obtido %v", err)
		}
	})

	t.Run("deve rejeitar nome invalido sem persistir", func(t *testing.T) {
		repo := &fakeProductRepo{}
		svc := newCatalogService(repo, &fakeResizer{})

		_, err := svc.CreateProduct(ctx, CreateProductInput{Name: "a"})
		if !errors.Is(err, domainerrors.ErrInvalidName) {
			t.Errorf("esperado ErrInvalidName, obtido %v", err)
		}
		if len(repo.created) != 0 {
			t.Errorf("produto invalido nao deveria ser persistido")
		}
	})
}

func TestCatalogServiceUpdateProduct(t *testing.T) {
	ctx := context.Background()

	t.Run("deve atualizar sem recalcular o slug", func(t *testing.T) {
		repo := &fakeProductRepo{}
		svc := newCatalogService(repo, &fakeResizer{})

		product, err := svc.CreateProduct(ctx, CreateProductInput{Name: "Tenis Runner"})
		if err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}

		updated, err := svc.UpdateProduct(ctx, UpdateProductInput{
			ID:          product.ID,
			Name:        "Tenis Trail",
			Description: "Tenis de trilha",
		})
		if err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}
		if updated.Name != "Tenis Trail" {
			t.Errorf("nome esperado 'Tenis Trail', obtido '%s'", updated.Name)
		}
		if updated.Slug != "tenis-runner" {
			t.Errorf("slug nao deveria ser recalculado, obtido '%s'", updated.Slug)
		}
		if len(repo.updated) != 1 {
			t.Errorf("esperada 1 atualizacao persistida, obtidas %d", len(repo.updated))
		}
	})

	t.Run("deve retornar ErrProductNotFound para id desconhecido", func(t *testing.T) {
		repo := &fakeProductRepo{}
		svc := newCatalogService(repo, &fakeResizer{})

		_, err := svc.UpdateProduct(ctx, UpdateProductInput{ID: uuid.New(), Name: "Tenis Trail"})
		if !errors.Is(err, domainerrors.ErrProductNotFound) {
			t.Errorf("esperado ErrProductNotFound, obtido %v", err)
		}
		if len(repo.updated) != 0 {
			t.Errorf("nada deveria ser persistido")
		}
	})

	t.Run("deve redimensionar a nova thumbnail", func(t *testing.T) {
		repo := &fakeProductRepo{}
		resizer := &fakeResizer{}
		svc := newCatalogService(repo, resizer)

		product, err := svc.CreateProduct(ctx, CreateProductInput{Name: "Tenis Runner"})
		if err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}

		_, err = svc.UpdateProduct(ctx, UpdateProductInput{
			ID:            product.ID,
			Name:          "Tenis Runner",
			ThumbnailPath: "/media/tenis-novo.jpg",
		})
		if err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}
		if len(resizer.calls) != 1 {
			t.Fatalf("esperada 1 chamada ao resizer, obtidas %d", len(resizer.calls))
		}
		if got := resizer.calls[0].path; got != "/media/tenis-novo.jpg" {
			t.Errorf("caminho inesperado no resizer: %s", got)
		}
	})
}

func TestCatalogServiceCreateVariation(t *testing.T) {
	ctx := context.Background()

	t.Run("deve persistir e derivar o slug", func(t *testing.T) {
		repo := &fakeProductRepo{}
		svc := newCatalogService(repo, &fakeResizer{})

		variation, err := svc.CreateVariation(ctx, CreateVariationInput{
			Name:  "Tenis Runner azul",
			Size:  "42",
			Color: "azul",
			Price: decimal.NewFromFloat(149.90),
		})
		if err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}
		if variation.Slug != "tenis-runner-azul" {
			t.Errorf("slug esperado 'tenis-runner-azul', obtido '%s'", variation.Slug)
		}
	})

	t.Run("deve rejeitar preco negativo", func(t *testing.T) {
		svc := newCatalogService(&fakeProductRepo{}, &fakeResizer{})

		_, err := svc.CreateVariation(ctx, CreateVariationInput{
			Name:  "Tenis Runner azul",
			Size:  "42",
			Color: "azul",
			Price: decimal.NewFromFloat(-1),
		})
		if !errors.Is(err, domainerrors.ErrInvalidPrice) {
			t.Errorf("esperado ErrInvalidPrice, obtido %v", err)
		}
	})
}

func TestCatalogServiceListProducts(t *testing.T) {
	ctx := context.Background()

	t.Run("deve falhar imediatamente para chave de ordenacao desconhecida", func(t *testing.T) {
		repo := &fakeProductRepo{}
		svc := newCatalogService(repo, &fakeResizer{})

		_, err := svc.ListProducts(ctx, "", "bogus", 1)
		if !errors.Is(err, domainerrors.ErrUnknownOrdering) {
			t.Fatalf("esperado ErrUnknownOrdering, obtido %v", err)
		}
		if len(repo.listCalls) != 0 {
			t.Errorf("repositorio nao deveria ser consultado para chave invalida")
		}
	})

	t.Run("chave vazia deve cair no padrao new", func(t *testing.T) {
		repo := &fakeProductRepo{}
		svc := newCatalogService(repo, &fakeResizer{})

		_, err := svc.ListProducts(ctx, "tenis", "", 2)
		if err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}
		if len(repo.listCalls) != 1 {
			t.Fatalf("esperada 1 consulta ao repositorio, obtidas %d", len(repo.listCalls))
		}
		got := repo.listCalls[0]
		if got.Ordering != repositories.OrderingNew {
			t.Errorf("ordenacao esperada 'new', obtida '%s'", got.Ordering)
		}
		if got.Search != "tenis" || got.Page != 2 {
			t.Errorf("filtros inesperados: %+v", got)
		}
	})

	t.Run("deve repassar cada chave conhecida", func(t *testing.T) {
		for _, key := range []string{"new", "less_price", "greatest_price", "less_eval", "greatest_eval"} {
			repo := &fakeProductRepo{}
			svc := newCatalogService(repo, &fakeResizer{})

			if _, err := svc.ListProducts(ctx, "", key, 1); err != nil {
				t.Fatalf("chave '%s': erro inesperado: %v", key, err)
			}
			if got := repo.listCalls[0].Ordering; got != repositories.OrderingKey(key) {
				t.Errorf("chave '%s': ordenacao repassada '%s'", key, got)
			}
		}
	})
}

func TestCatalogServiceGetProductBySlug(t *testing.T) {
	ctx := context.Background()

	t.Run("deve retornar o produto quando existe", func(t *testing.T) {
		product := &entities.Product{Name: "Tenis Runner", Slug: "tenis-runner"}
		repo := &fakeProductRepo{bySlug: map[string]*entities.Product{"tenis-runner": product}}
		svc := newCatalogService(repo, &fakeResizer{})

		got, err := svc.GetProductBySlug(ctx, "tenis-runner")
		if err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}
		if got != product {
			t.Errorf("produto inesperado: %+v", got)
		}
	})

	t.Run("deve retornar ErrProductNotFound quando nao existe", func(t *testing.T) {
		repo := &fakeProductRepo{bySlug: map[string]*entities.Product{}}
		svc := newCatalogService(repo, &fakeResizer{})

		_, err := svc.GetProductBySlug(ctx, "nao-existe")
		if !errors.Is(err, domainerrors.ErrProductNotFound) {
			t.Errorf("esperado ErrProductNotFound, obtido %v", err)
		}
	})
}
