package mongo

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/jhoicas/fieldstock-api/internal/domain/entity"
)

// errMalformedDocument documento sin los campos mínimos para construir la entidad.
var errMalformedDocument = errors.New("mongo: documento incompleto")

// userDoc forma persistida en la colección "user".
type userDoc struct {
	ID           bson.RawValue `bson:"_id,omitempty"`
	Name         string        `bson:"name"`
	Email        string        `bson:"email"`
	Role         string        `bson:"role,omitempty"`
	PasswordHash string        `bson:"password_hash"`
	Phone        string        `bson:"phone,omitempty"`
	IsActive     *bool         `bson:"is_active,omitempty"`
	CreatedAt    time.Time     `bson:"created_at,omitempty"`
	UpdatedAt    time.Time     `bson:"updated_at,omitempty"`
}

type itemDoc struct {
	SKU         string                `bson:"sku"`
	Name        string                `bson:"name"`
	Description string                `bson:"description,omitempty"`
	Unit        string                `bson:"unit,omitempty"`
	Supplier    string                `bson:"supplier,omitempty"`
	Price       *primitive.Decimal128 `bson:"price,omitempty"`
	Active      *bool                 `bson:"active,omitempty"`
	UpdatedAt   time.Time             `bson:"updated_at,omitempty"`
}

type stockDoc struct {
	ID        bson.RawValue `bson:"_id,omitempty"`
	UserID    string        `bson:"user_id"`
	SKU       string        `bson:"sku"`
	Quantity  int           `bson:"quantity"`
	UpdatedAt time.Time     `bson:"updated_at,omitempty"`
}

type workOrderDoc struct {
	OrderID         string    `bson:"order_id"`
	TechnicianID    string    `bson:"technician_id,omitempty"`
	TechnicianEmail string    `bson:"technician_email,omitempty"`
	Status          string    `bson:"status"`
	ExternalRef     string    `bson:"external_ref,omitempty"`
	CompletedAt     string    `bson:"completed_at,omitempty"`
	UpdatedAt       time.Time `bson:"updated_at,omitempty"`
}

// idString acepta _id como string (uuid) u ObjectID (documentos creados por la versión anterior).
func idString(v bson.RawValue) (string, error) {
	switch v.Type {
	case bsontype.String:
		return v.StringValue(), nil
	case bsontype.ObjectID:
		return v.ObjectID().Hex(), nil
	default:
		return "", fmt.Errorf("%w: _id de tipo %s", errMalformedDocument, v.Type)
	}
}

// idFilter valor de búsqueda por _id que cubre ambos formatos.
func idFilter(id string) interface{} {
	if oid, err := primitive.ObjectIDFromHex(id); err == nil {
		return bson.M{"$in": bson.A{id, oid}}
	}
	return id
}

func (d *userDoc) toEntity() (*entity.User, error) {
	id, err := idString(d.ID)
	if err != nil {
		return nil, err
	}
	if d.Email == "" || d.PasswordHash == "" {
		return nil, fmt.Errorf("%w: user %s", errMalformedDocument, id)
	}
	role := d.Role
	if role == "" {
		role = entity.RoleTechnician
	}
	active := true
	if d.IsActive != nil {
		active = *d.IsActive
	}
	return &entity.User{
		ID:           id,
		Name:         d.Name,
		Email:        d.Email,
		Role:         role,
		PasswordHash: d.PasswordHash,
		Phone:        d.Phone,
		IsActive:     active,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}, nil
}

func (d *itemDoc) toEntity() (*entity.InventoryItem, error) {
	if d.SKU == "" {
		return nil, errMalformedDocument
	}
	it := &entity.InventoryItem{
		SKU:         d.SKU,
		Name:        d.Name,
		Description: d.Description,
		Unit:        d.Unit,
		Supplier:    d.Supplier,
		Active:      d.Active == nil || *d.Active,
		UpdatedAt:   d.UpdatedAt,
	}
	if d.Price != nil {
		p, err := decimal.NewFromString(d.Price.String())
		if err != nil {
			return nil, fmt.Errorf("%w: price de %s: %w", errMalformedDocument, d.SKU, err)
		}
		it.Price = &p
	}
	return it, nil
}

func (d *stockDoc) toEntity() (*entity.TechnicianStock, error) {
	id, err := idString(d.ID)
	if err != nil {
		return nil, err
	}
	if d.UserID == "" || d.SKU == "" {
		return nil, fmt.Errorf("%w: technicianstock %s", errMalformedDocument, id)
	}
	return &entity.TechnicianStock{
		ID:        id,
		UserID:    d.UserID,
		SKU:       d.SKU,
		Quantity:  entity.ClampQuantity(d.Quantity),
		UpdatedAt: d.UpdatedAt,
	}, nil
}

func (d *workOrderDoc) toEntity() (*entity.WorkOrder, error) {
	if d.OrderID == "" {
		return nil, errMalformedDocument
	}
	status := d.Status
	if status == "" {
		status = entity.WorkOrderOpen
	}
	return &entity.WorkOrder{
		OrderID:         d.OrderID,
		TechnicianID:    d.TechnicianID,
		TechnicianEmail: d.TechnicianEmail,
		Status:          status,
		ExternalRef:     d.ExternalRef,
		CompletedAt:     d.CompletedAt,
		UpdatedAt:       d.UpdatedAt,
	}, nil
}

// decimalToBSON convierte el precio para guardarlo como Decimal128.
func decimalToBSON(d *decimal.Decimal) (*primitive.Decimal128, error) {
	if d == nil {
		return nil, nil
	}
	v, err := primitive.ParseDecimal128(d.String())
	if err != nil {
		return nil, err
	}
	return &v, nil
}
