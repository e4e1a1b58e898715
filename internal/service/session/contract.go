package session

// Gauge учитывает число открытых сессий
type Gauge interface {
	SessionOpened()
	SessionClosed()
}
