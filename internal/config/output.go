package config

type Output struct {
	Format string `env:"HN_OUTPUT_FORMAT" envDefault:"table" validate:"oneof=table json"`
	Color  bool   `env:"HN_OUTPUT_COLOR" envDefault:"true"`
}
