package repositories_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"tienda/internal/models"
	"tienda/internal/repositories"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Order{},
		&models.Product{},
		&models.Payment{},
		&models.Cart{},
	))
	return db
}

func TestCreateAndGetByIDRoundTrip(t *testing.T) {
	repo := repositories.NewGormRepository[models.Product](setupDB(t))

	product := &models.Product{
		ID:          1,
		Name:        "Widget Deluxe",
		Description: "A very fine widget indeed",
		Price:       9.99,
		Quantity:    3,
		Category:    "Widgets",
		Brand:       "Acme",
	}
	require.NoError(t, repo.Create(product))

	got, err := repo.GetByID(1)
	require.NoError(t, err)
	assert.Equal(t, product, got)
}

func TestCreateDuplicateID(t *testing.T) {
	repo := repositories.NewGormRepository[models.Product](setupDB(t))

	product := models.Product{ID: 7, Name: "Widget Deluxe", Price: 1, Quantity: 1, Category: "Widgets", Brand: "Acme"}
	require.NoError(t, repo.Create(&product))

	dup := product
	err := repo.Create(&dup)
	assert.ErrorIs(t, err, repositories.ErrDuplicateID)
}

func TestGetByIDMissing(t *testing.T) {
	repo := repositories.NewGormRepository[models.Product](setupDB(t))

	got, err := repo.GetByID(99)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestUpdateMergesFields(t *testing.T) {
	repo := repositories.NewGormRepository[models.Product](setupDB(t))

	require.NoError(t, repo.Create(&models.Product{
		ID: 1, Name: "Widget Deluxe", Description: "The original description", Price: 9.99, Quantity: 3, Category: "Widgets", Brand: "Acme",
	}))

	err := repo.Update(1, map[string]interface{}{"price": 12.50})
	require.NoError(t, err)

	got, err := repo.GetByID(1)
	require.NoError(t, err)
	assert.Equal(t, 12.50, got.Price)
	assert.Equal(t, "Widget Deluxe", got.Name, "fields absent from the update must be untouched")
	assert.Equal(t, "The original description", got.Description)
	assert.Equal(t, 3, got.Quantity)
}

func TestUpdateDocumentFields(t *testing.T) {
	repo := repositories.NewGormRepository[models.Order](setupDB(t))

	require.NoError(t, repo.Create(&models.Order{
		ID:           1,
		CustomerID:   "42",
		Products:     []map[string]interface{}{{"product_id": float64(1), "quantity": float64(2)}},
		TotalPrice:   19.98,
		Status:       "pending",
		TrackingInfo: map[string]interface{}{"carrier": "dhl"},
	}))

	// Map and slice values must survive a map-based update; the JSON
	// columns receive encoded text, not raw Go values.
	err := repo.Update(1, map[string]interface{}{
		"products":      []map[string]interface{}{{"product_id": float64(3), "quantity": float64(1)}},
		"tracking_info": map[string]interface{}{"carrier": "ups", "tracking_number": "XY123"},
		"status":        "shipped",
	})
	require.NoError(t, err)

	got, err := repo.GetByID(1)
	require.NoError(t, err)
	assert.Equal(t, "shipped", got.Status)
	require.Len(t, got.Products, 1)
	assert.Equal(t, float64(3), got.Products[0]["product_id"])
	assert.Equal(t, "ups", got.TrackingInfo["carrier"])
	assert.Equal(t, "42", got.CustomerID, "fields absent from the update must be untouched")
}

func TestUpdateNestedStructFields(t *testing.T) {
	repo := repositories.NewGormRepository[models.Payment](setupDB(t))

	require.NoError(t, repo.Create(&models.Payment{
		ID:             1,
		UserID:         "42",
		CardholderName: "Ana Torres",
		CardNumber:     "4111111111111111",
		ExpiryDate:     &models.ExpiryDate{Month: "01", Year: "2027"},
	}))

	err := repo.Update(1, map[string]interface{}{
		"expiry_date": &models.ExpiryDate{Month: "12", Year: "2030"},
		"billing_address": &models.BillingAddress{
			Street: "Calle Mayor 1", City: "Madrid", State: "Madrid",
			PostalCode: "28001", Country: "ES",
		},
	})
	require.NoError(t, err)

	got, err := repo.GetByID(1)
	require.NoError(t, err)
	require.NotNil(t, got.ExpiryDate)
	assert.Equal(t, "2030", got.ExpiryDate.Year)
	require.NotNil(t, got.BillingAddress)
	assert.Equal(t, "Madrid", got.BillingAddress.City)
	assert.Equal(t, "Ana Torres", got.CardholderName)
}

func TestUpdateMissingNeverCreates(t *testing.T) {
	db := setupDB(t)
	repo := repositories.NewGormRepository[models.Product](db)

	err := repo.Update(42, map[string]interface{}{"price": 1.0})
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	var count int64
	require.NoError(t, db.Model(&models.Product{}).Count(&count).Error)
	assert.Zero(t, count, "update must not upsert")
}

func TestDeleteTwiceReportsNotFound(t *testing.T) {
	repo := repositories.NewGormRepository[models.Product](setupDB(t))

	require.NoError(t, repo.Create(&models.Product{ID: 1, Name: "Widget Deluxe", Price: 1, Category: "Widgets", Brand: "Acme"}))

	assert.NoError(t, repo.Delete(1))
	assert.ErrorIs(t, repo.Delete(1), repositories.ErrNotFound)
}

func TestUserGetByEmail(t *testing.T) {
	repo := repositories.NewGormUserRepository(setupDB(t))

	require.NoError(t, repo.Create(&models.User{ID: 1, Email: "a@b.com", PasswordToken: "token"}))

	got, err := repo.GetByEmail("a@b.com")
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.ID)

	_, err = repo.GetByEmail("missing@b.com")
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestPaymentGetByUserID(t *testing.T) {
	repo := repositories.NewGormPaymentRepository(setupDB(t))

	require.NoError(t, repo.Create(&models.Payment{ID: 1, UserID: "42", CardholderName: "Ana Torres", CardNumber: "4111111111111111"}))
	require.NoError(t, repo.Create(&models.Payment{ID: 2, UserID: "42", CardholderName: "Ana Torres", CardNumber: "5555555555555555"}))
	require.NoError(t, repo.Create(&models.Payment{ID: 3, UserID: "7", CardholderName: "Luis Vega", CardNumber: "4111111111111111"}))

	payments, err := repo.GetByUserID("42")
	require.NoError(t, err)
	assert.Len(t, payments, 2)

	payments, err = repo.GetByUserID("none")
	require.NoError(t, err)
	assert.Empty(t, payments, "no payments is an empty list, not an error")
}

func TestCartRoundTrip(t *testing.T) {
	repo := repositories.NewGormCartRepository(setupDB(t))

	cart := &models.Cart{
		ID:     1,
		UserID: "42",
		Products: []models.CartProduct{
			{ProductID: 1, Name: "Widget", Price: 9.99, Category: "Widgets", Brand: "Acme"},
		},
	}
	require.NoError(t, repo.Create(cart))

	got, err := repo.GetByUserID("42")
	require.NoError(t, err)
	require.Len(t, got.Products, 1)
	assert.Equal(t, "Widget", got.Products[0].Name)

	got.Products = append(got.Products, models.CartProduct{ProductID: 2, Name: "Gadget", Price: 5, Category: "Gadgets", Brand: "Acme"})
	require.NoError(t, repo.Save(got))

	got, err = repo.GetByUserID("42")
	require.NoError(t, err)
	assert.Len(t, got.Products, 2)

	_, err = repo.GetByUserID("7")
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}
