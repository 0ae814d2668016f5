package snapshot

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/partsledger/partsledger-api/internal/domain/entity"
	"github.com/partsledger/partsledger-api/internal/domain/enum"
)

func sampleState() *entity.AppState {
	state := entity.DefaultState()

	partNames := []string{"فلتر زيت", "Brake pad", "بوجيهات"}
	for i, name := range partNames {
		part := entity.Part{ID: uuid.New(), Name: name, Code: "P-10" + string(rune('0'+i)), Quantity: 12 - i, Threshold: 5}
		part.SetPriceFromDecimal(120.50 + float64(i))
		state.Parts = append(state.Parts, part)
	}

	customerNames := []string{"أحمد مصطفى", "Mona Adel"}
	for i, name := range customerNames {
		state.Customers = append(state.Customers, entity.Customer{
			ID:      uuid.New(),
			Name:    name,
			Phone:   "0101234567" + string(rune('0'+i)),
			Address: "شارع الهرم",
			Balance: int64(15000 * (i + 1)),
		})
	}

	statuses := []enum.PaymentStatus{
		enum.PaymentStatusPartial,
		enum.PaymentStatusPaid,
		enum.PaymentStatusUnpaid,
		enum.PaymentStatusPaid,
		enum.PaymentStatusPartial,
	}
	for i, status := range statuses {
		part := state.Parts[i%len(state.Parts)]
		customer := state.Customers[i%len(state.Customers)]
		state.Operations = append(state.Operations, entity.Operation{
			ID:            uuid.New(),
			Timestamp:     time.Now().Add(-time.Duration(i) * time.Minute).Round(time.Second),
			CustomerID:    customer.ID,
			CustomerName:  customer.Name,
			PartID:        part.ID,
			PartName:      part.Name,
			Quantity:      i + 1,
			Price:         24100 + int64(i*100),
			PaidAmount:    10000,
			PaymentStatus: status,
		})
	}

	state.Notifications = append(state.Notifications,
		entity.NewNotification(uuid.New(), "Low stock alert", enum.SeverityDanger))

	state.Settings.Theme = "light"
	state.Settings.Receipt.Title = "ورشة النور"
	return state
}

func TestRoundTrip(t *testing.T) {
	state := sampleState()

	token, err := Encode(state)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	decoded, err := Decode(token, nil)
	require.NoError(t, err)

	require.Len(t, decoded.Parts, 3)
	assert.Equal(t, "فلتر زيت", decoded.Parts[0].Name)
	assert.Equal(t, int64(12050), decoded.Parts[0].Price)
	assert.Equal(t, 12, decoded.Parts[0].Quantity)
	assert.Equal(t, state.Parts, decoded.Parts)

	require.Len(t, decoded.Customers, 2)
	assert.Equal(t, "أحمد مصطفى", decoded.Customers[0].Name)
	assert.Equal(t, int64(15000), decoded.Customers[0].Balance)
	assert.Equal(t, state.Customers, decoded.Customers)

	require.Len(t, decoded.Operations, 5)
	for i := range state.Operations {
		assert.Equal(t, state.Operations[i].ID, decoded.Operations[i].ID)
		assert.Equal(t, state.Operations[i].Price, decoded.Operations[i].Price)
		assert.Equal(t, state.Operations[i].PaidAmount, decoded.Operations[i].PaidAmount)
		assert.Equal(t, state.Operations[i].PaymentStatus, decoded.Operations[i].PaymentStatus)
		assert.True(t, state.Operations[i].Timestamp.Equal(decoded.Operations[i].Timestamp))
	}

	require.Len(t, decoded.Notifications, 1)
	assert.Equal(t, enum.SeverityDanger, decoded.Notifications[0].Severity)

	assert.Equal(t, "light", decoded.Settings.Theme)
	assert.Equal(t, "ورشة النور", decoded.Settings.Receipt.Title)
}

func TestEncodeStripsLicense(t *testing.T) {
	state := sampleState()
	license := "8F2K4-M9X7Q-P1L5V-R3N6W-T0Y8Z"
	state.Settings.License = &license

	token, err := Encode(state)
	require.NoError(t, err)

	// The input state is untouched
	require.NotNil(t, state.Settings.License)
	assert.Equal(t, license, *state.Settings.License)

	decoded, err := Decode(token, nil)
	require.NoError(t, err)
	assert.Nil(t, decoded.Settings.License)
}

func TestDecodePreservesCurrentLicense(t *testing.T) {
	token, err := Encode(sampleState())
	require.NoError(t, err)

	current := "Z9X8C-7V6B5-N4M3K-2L1J0-Q5W4E"
	decoded, err := Decode(token, &current)
	require.NoError(t, err)
	require.NotNil(t, decoded.Settings.License)
	assert.Equal(t, current, *decoded.Settings.License)
}

func TestDecodeRejectsMalformedTokens(t *testing.T) {
	tests := []struct {
		name  string
		token string
	}{
		{"not base64", "!!!not base64!!!"},
		{"base64 of non-json", base64.StdEncoding.EncodeToString([]byte("hello there"))},
		{"json array payload", base64.StdEncoding.EncodeToString([]byte(`[1,2,3]`))},
		{"missing operations key", base64.StdEncoding.EncodeToString([]byte(`{"parts":[],"customers":[]}`))},
		{"empty token", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(tt.token, nil)
			assert.ErrorIs(t, err, ErrInvalidSnapshot)
		})
	}
}

func TestDecodeMergesPartialPayload(t *testing.T) {
	// A minimal payload with only the required key still decodes into a
	// fully-shaped state
	token := base64.StdEncoding.EncodeToString([]byte(`{"operations":[]}`))

	decoded, err := Decode(token, nil)
	require.NoError(t, err)
	assert.NotNil(t, decoded.Parts)
	assert.NotNil(t, decoded.Customers)
	assert.NotNil(t, decoded.Notifications)
	assert.Equal(t, "dark", decoded.Settings.Theme)
}
