package services

import "time"

// Статусы компонентов.
const (
	StatusUp   = "UP"
	StatusDown = "DOWN"
)

// ServiceName - имя сервиса в ответах health-проверок.
const ServiceName = "book-ai-backend"

// Liveness - ответ проверки живости.
type Liveness struct {
	Status    string
	Timestamp time.Time
	Service   string
}

// Readiness - ответ проверки готовности по компонентам.
type Readiness struct {
	Status     string
	Components map[string]string
}

// Ready сообщает, готовы ли все компоненты.
func (r *Readiness) Ready() bool {
	return r.Status == StatusUp
}
