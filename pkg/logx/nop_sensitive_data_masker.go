package logx

// NopSensitiveDataMasker отдаёт дампы как есть. Дефолт для LoggingRoundTripper,
// пока клиент явно не попросил маскирование.
type NopSensitiveDataMasker struct{}

func NewNopSensitiveDataMasker() NopSensitiveDataMasker {
	return NopSensitiveDataMasker{}
}

func (NopSensitiveDataMasker) Mask(input []byte) []byte {
	return input
}
