package support

import (
	"fmt"
	"testing"

	"transvert-logistics/models/support"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&support.Ticket{}, &support.Response{}))
	return db
}

func TestCreateTicketDefaults(t *testing.T) {
	db := newTestDB(t)
	service := NewService(db)

	ticket, err := service.CreateTicket(nil, "Paquete retrasado", "Mi envío lleva 5 días sin moverse.", "cliente@example.com", "")
	require.NoError(t, err)

	assert.NotZero(t, ticket.ID)
	assert.Equal(t, support.PriorityMedium, ticket.Priority)
	assert.Equal(t, support.TicketPending, ticket.Status)
	require.NotNil(t, ticket.ContactEmail)
	assert.Equal(t, "cliente@example.com", *ticket.ContactEmail)
}

func TestCreateTicketRequiresSubjectAndMessage(t *testing.T) {
	db := newTestDB(t)
	service := NewService(db)

	_, err := service.CreateTicket(nil, "", "mensaje", "", support.PriorityHigh)
	assert.ErrorIs(t, err, ErrMissingFields)

	_, err = service.CreateTicket(nil, "asunto", "", "", support.PriorityHigh)
	assert.ErrorIs(t, err, ErrMissingFields)

	var count int64
	require.NoError(t, db.Model(&support.Ticket{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestCreateTicketInvalidPriorityFallsBack(t *testing.T) {
	db := newTestDB(t)
	service := NewService(db)

	ticket, err := service.CreateTicket(nil, "Consulta", "¿Cuánto tarda un envío a Cali?", "", "Urgentísima")
	require.NoError(t, err)
	assert.Equal(t, support.PriorityMedium, ticket.Priority)
}

func TestRespondAppendsAndUpdatesStatus(t *testing.T) {
	db := newTestDB(t)
	service := NewService(db)

	ticket, err := service.CreateTicket(nil, "Consulta", "¿Cuánto tarda un envío a Cali?", "", support.PriorityLow)
	require.NoError(t, err)

	updated, err := service.Respond(ticket.ID, 42, "Entre 2 y 3 días hábiles.", support.TicketAnswered)
	require.NoError(t, err)
	assert.Equal(t, support.TicketAnswered, updated.Status)

	var responses []support.Response
	require.NoError(t, db.Where("ticket_id = ?", ticket.ID).Find(&responses).Error)
	require.Len(t, responses, 1)
	assert.Equal(t, uint(42), responses[0].UserID)
	assert.Equal(t, "Entre 2 y 3 días hábiles.", responses[0].Message)
}

func TestRespondStatusOnly(t *testing.T) {
	db := newTestDB(t)
	service := NewService(db)

	ticket, err := service.CreateTicket(nil, "Consulta", "detalle", "", support.PriorityLow)
	require.NoError(t, err)

	updated, err := service.Respond(ticket.ID, 42, "", support.TicketInProgress)
	require.NoError(t, err)
	assert.Equal(t, support.TicketInProgress, updated.Status)

	var count int64
	require.NoError(t, db.Model(&support.Response{}).Where("ticket_id = ?", ticket.ID).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestRespondUnknownTicket(t *testing.T) {
	db := newTestDB(t)
	service := NewService(db)

	_, err := service.Respond(9999, 1, "hola", support.TicketAnswered)
	assert.ErrorIs(t, err, ErrTicketNotFound)
}

func TestListFiltersByStatus(t *testing.T) {
	db := newTestDB(t)
	service := NewService(db)

	first, err := service.CreateTicket(nil, "Uno", "detalle", "", support.PriorityLow)
	require.NoError(t, err)
	_, err = service.CreateTicket(nil, "Dos", "detalle", "", support.PriorityLow)
	require.NoError(t, err)

	_, err = service.Respond(first.ID, 1, "listo", support.TicketAnswered)
	require.NoError(t, err)

	answered, err := service.List(string(support.TicketAnswered))
	require.NoError(t, err)
	require.Len(t, answered, 1)
	assert.Equal(t, first.ID, answered[0].ID)
	require.Len(t, answered[0].Responses, 1)

	all, err := service.List("")
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestListByUser(t *testing.T) {
	db := newTestDB(t)
	service := NewService(db)

	userID := uint(5)
	mine, err := service.CreateTicket(&userID, "Mío", "detalle", "", support.PriorityLow)
	require.NoError(t, err)
	_, err = service.CreateTicket(nil, "Ajeno", "detalle", "", support.PriorityLow)
	require.NoError(t, err)

	tickets, err := service.ListByUser(userID)
	require.NoError(t, err)
	require.Len(t, tickets, 1)
	assert.Equal(t, mine.ID, tickets[0].ID)
}
