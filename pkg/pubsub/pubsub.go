package pubsub

import "sync"

// Broker es un bus de eventos en proceso con entrega best-effort.
// Publish nunca bloquea: si el buffer de un suscriptor está lleno, el evento
// se descarta para ese suscriptor. No hay replay ni backlog.
type Broker struct {
	mu   sync.RWMutex
	subs map[int]chan any
	next int
}

// buffer por suscriptor; un consumidor lento pierde eventos en vez de frenar al publicador.
const subBuffer = 16

// New crea un broker vacío.
func New() *Broker {
	return &Broker{subs: make(map[int]chan any)}
}

// Subscribe registra un suscriptor y devuelve su canal de eventos junto con
// la función de cancelación. Cancelar cierra el canal.
func (b *Broker) Subscribe() (<-chan any, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.next
	b.next++
	ch := make(chan any, subBuffer)
	b.subs[id] = ch

	cancel := func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		if c, ok := b.subs[id]; ok {
			delete(b.subs, id)
			close(c)
		}
	}
	return ch, cancel
}

// Publish entrega el evento a todos los suscriptores activos sin bloquear.
func (b *Broker) Publish(event any) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	for _, ch := range b.subs {
		select {
		case ch <- event:
		default:
			// suscriptor saturado: se descarta el evento
		}
	}
}

// Len devuelve la cantidad de suscriptores activos.
func (b *Broker) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs)
}
