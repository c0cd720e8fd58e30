package product

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/shoponline-backend/internal/config"
	"github.com/your-org/shoponline-backend/internal/pkg/apperrors"
)

// fakeRepository is an in-memory catalog store.
type fakeRepository struct {
	products map[uint]*Product
	nextID   uint
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{products: make(map[uint]*Product)}
}

func (f *fakeRepository) Create(p *Product) error {
	f.nextID++
	p.ID = f.nextID
	cp := *p
	f.products[p.ID] = &cp
	return nil
}

func (f *fakeRepository) FindAll() ([]Product, error) {
	return f.collect(func(*Product) bool { return true }), nil
}

func (f *fakeRepository) FindByID(id uint) (*Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, apperrors.NotFound("Product not found")
	}
	cp := *p
	return &cp, nil
}

func (f *fakeRepository) FindByNameLike(name string) ([]Product, error) {
	return f.collect(func(p *Product) bool {
		return strings.Contains(strings.ToLower(p.Name), strings.ToLower(name))
	}), nil
}

func (f *fakeRepository) FindByCategoryLike(category string) ([]Product, error) {
	return f.collect(func(p *Product) bool {
		return strings.Contains(strings.ToLower(p.Category), strings.ToLower(category))
	}), nil
}

func (f *fakeRepository) Save(p *Product) error {
	cp := *p
	f.products[p.ID] = &cp
	return nil
}

func (f *fakeRepository) Delete(id uint) error {
	if _, ok := f.products[id]; !ok {
		return apperrors.NotFound("Product not found")
	}
	delete(f.products, id)
	return nil
}

func (f *fakeRepository) collect(match func(*Product) bool) []Product {
	var out []Product
	for _, p := range f.products {
		if match(p) {
			out = append(out, *p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// fakeImageStore records saves without touching disk.
type fakeImageStore struct {
	saved []string
	err   error
}

func (f *fakeImageStore) Save(_ multipart.File, header *multipart.FileHeader) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	path := "static/images/products/" + header.Filename
	f.saved = append(f.saved, path)
	return path, nil
}

func uploadFile(t *testing.T, filename string) (multipart.File, *multipart.FileHeader) {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("image", filename)
	require.NoError(t, err)
	_, err = fw.Write([]byte("image-bytes"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", "/addProduct", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())

	file, header, err := req.FormFile("image")
	require.NoError(t, err)
	return file, header
}

func newService(repo Repository, images *fakeImageStore) *Service {
	return NewService(repo, images, &config.Config{})
}

func seed(t *testing.T, repo *fakeRepository, products ...Product) {
	t.Helper()
	for i := range products {
		require.NoError(t, repo.Create(&products[i]))
	}
}

func TestCreateStoresImageThenProduct(t *testing.T) {
	repo := newFakeRepository()
	images := &fakeImageStore{}
	svc := newService(repo, images)

	file, header := uploadFile(t, "mug.png")
	p, err := svc.Create("Coffee Mug", "kitchen", 12.50, file, header)
	require.NoError(t, err)

	assert.NotZero(t, p.ID)
	assert.Equal(t, "static/images/products/mug.png", p.Image)
	assert.Equal(t, images.saved, []string{p.Image})

	stored, err := repo.FindByID(p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Coffee Mug", stored.Name)
}

func TestCreateRejectedImageCreatesNoProduct(t *testing.T) {
	repo := newFakeRepository()
	images := &fakeImageStore{err: apperrors.BadRequest("Invalid image format. Please upload a PNG or JPEG image.")}
	svc := newService(repo, images)

	file, header := uploadFile(t, "malware.exe")
	_, err := svc.Create("Nope", "misc", 1.00, file, header)

	assert.Equal(t, apperrors.KindBadRequest, apperrors.KindOf(err))
	assert.Empty(t, repo.products)
}

func TestSearchByNameIsCaseInsensitiveSubstring(t *testing.T) {
	repo := newFakeRepository()
	seed(t, repo,
		Product{Name: "Wireless Headphones", Category: "electronics"},
		Product{Name: "Wired Headphones", Category: "electronics"},
		Product{Name: "Coffee Mug", Category: "kitchen"},
	)
	svc := newService(repo, &fakeImageStore{})

	found, err := svc.SearchByName("HEADPHONE")
	require.NoError(t, err)
	require.Len(t, found, 2)
	assert.Equal(t, "Wireless Headphones", found[0].Name)
	assert.Equal(t, "Wired Headphones", found[1].Name)
}

func TestSearchByNameNoMatches(t *testing.T) {
	repo := newFakeRepository()
	seed(t, repo, Product{Name: "Coffee Mug", Category: "kitchen"})
	svc := newService(repo, &fakeImageStore{})

	_, err := svc.SearchByName("laptop")
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
}

func TestSearchByCategory(t *testing.T) {
	repo := newFakeRepository()
	seed(t, repo,
		Product{Name: "Wireless Headphones", Category: "Electronics"},
		Product{Name: "Coffee Mug", Category: "kitchen"},
	)
	svc := newService(repo, &fakeImageStore{})

	found, err := svc.SearchByCategory("electro")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Wireless Headphones", found[0].Name)

	_, err = svc.SearchByCategory("garden")
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
}

func TestUpdateKeepsImage(t *testing.T) {
	repo := newFakeRepository()
	seed(t, repo, Product{Name: "Coffee Mug", Category: "kitchen", Image: "static/images/products/mug.png", Price: 12.00})
	svc := newService(repo, &fakeImageStore{})

	p, err := svc.Update(1, &UpdateRequest{Name: "Travel Mug", Category: "kitchen", Price: 18.00})
	require.NoError(t, err)

	assert.Equal(t, "Travel Mug", p.Name)
	assert.InDelta(t, 18.00, p.Price, 0.001)
	assert.Equal(t, "static/images/products/mug.png", p.Image)
}

func TestUpdateUnknownProduct(t *testing.T) {
	svc := newService(newFakeRepository(), &fakeImageStore{})

	_, err := svc.Update(99, &UpdateRequest{Name: "x", Category: "y", Price: 1})
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
}

func TestDelete(t *testing.T) {
	repo := newFakeRepository()
	seed(t, repo, Product{Name: "Coffee Mug", Category: "kitchen"})
	svc := newService(repo, &fakeImageStore{})

	require.NoError(t, svc.Delete(1))
	assert.Empty(t, repo.products)

	err := svc.Delete(1)
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
}
