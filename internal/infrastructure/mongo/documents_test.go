package mongo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/jhoicas/fieldstock-api/internal/domain/entity"
)

func decodeInto(t *testing.T, in bson.M, out interface{}) {
	t.Helper()
	raw, err := bson.Marshal(in)
	require.NoError(t, err)
	require.NoError(t, bson.Unmarshal(raw, out))
}

func TestUserDoc_ObjectIDYValoresPorDefecto(t *testing.T) {
	oid := primitive.NewObjectID()
	var doc userDoc
	decodeInto(t, bson.M{"_id": oid, "name": "Jan", "email": "jan@example.com", "password_hash": "$2a$..."}, &doc)

	u, err := doc.toEntity()
	require.NoError(t, err)
	assert.Equal(t, oid.Hex(), u.ID)
	assert.Equal(t, entity.RoleTechnician, u.Role)
	assert.True(t, u.IsActive)
}

func TestUserDoc_SinHash_Malformado(t *testing.T) {
	var doc userDoc
	decodeInto(t, bson.M{"_id": "u1", "email": "jan@example.com"}, &doc)

	_, err := doc.toEntity()
	assert.ErrorIs(t, err, errMalformedDocument)
}

func TestItemDoc_Precio(t *testing.T) {
	price, err := primitive.ParseDecimal128("12.50")
	require.NoError(t, err)
	var doc itemDoc
	decodeInto(t, bson.M{"sku": "1001", "name": "Kabel", "price": price}, &doc)

	it, err := doc.toEntity()
	require.NoError(t, err)
	require.NotNil(t, it.Price)
	assert.Equal(t, "12.5", it.Price.String())
	assert.True(t, it.Active)
}

func TestStockDoc_CantidadNegativaLegada(t *testing.T) {
	var doc stockDoc
	decodeInto(t, bson.M{"_id": "s1", "user_id": "u1", "sku": "X", "quantity": -3}, &doc)

	row, err := doc.toEntity()
	require.NoError(t, err)
	assert.Equal(t, 0, row.Quantity)
}

func TestIDString_TipoNoSoportado(t *testing.T) {
	var doc stockDoc
	decodeInto(t, bson.M{"_id": 42, "user_id": "u1", "sku": "X"}, &doc)

	_, err := doc.toEntity()
	assert.ErrorIs(t, err, errMalformedDocument)
}

func TestIDFilter(t *testing.T) {
	assert.Equal(t, "abc", idFilter("abc"))
	oid := primitive.NewObjectID()
	_, ok := idFilter(oid.Hex()).(bson.M)
	assert.True(t, ok)
}
