package pubsub

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubscribeReceivesPublish(t *testing.T) {
	b := New()
	ch, cancel := b.Subscribe()
	defer cancel()

	b.Publish("hola")

	select {
	case ev := <-ch:
		assert.Equal(t, "hola", ev)
	default:
		t.Fatal("el suscriptor no recibió el evento")
	}
}

func TestCancelClosesChannel(t *testing.T) {
	b := New()
	ch, cancel := b.Subscribe()
	require.Equal(t, 1, b.Len())

	cancel()
	assert.Equal(t, 0, b.Len())

	_, open := <-ch
	assert.False(t, open, "el canal debe quedar cerrado")

	// Cancelar dos veces es inocuo.
	cancel()
	assert.Equal(t, 0, b.Len())
}

func TestPublishWithoutSubscribersDoesNotBlock(t *testing.T) {
	b := New()
	// Sin suscriptores, Publish retorna de inmediato.
	b.Publish("nadie escucha")
	assert.Equal(t, 0, b.Len())
}

func TestSlowSubscriberDropsEvents(t *testing.T) {
	b := New()
	ch, cancel := b.Subscribe()
	defer cancel()

	// Llenar el buffer y seguir publicando: los eventos extra se descartan
	// para este suscriptor en vez de bloquear al publicador.
	for i := 0; i < subBuffer+5; i++ {
		b.Publish(i)
	}

	received := 0
	for {
		select {
		case <-ch:
			received++
			continue
		default:
		}
		break
	}
	assert.Equal(t, subBuffer, received)
}

func TestMultipleSubscribers(t *testing.T) {
	b := New()
	ch1, cancel1 := b.Subscribe()
	ch2, cancel2 := b.Subscribe()
	defer cancel1()
	defer cancel2()

	b.Publish("evento")

	assert.Equal(t, "evento", <-ch1)
	assert.Equal(t, "evento", <-ch2)

	// Cancelar uno no afecta al otro.
	cancel1()
	b.Publish("segundo")
	assert.Equal(t, "segundo", <-ch2)
}
