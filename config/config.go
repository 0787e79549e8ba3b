package config

type AppConfig struct {
	Tree *TreeConfig
	Demo *DemoConfig
}

func New() *AppConfig {
	return &AppConfig{
		Tree: NewTreeConfig(),
		Demo: NewDemoConfig(),
	}
}
