package main

import (
	"github.com/beanhaus/coffeepos/internal/app"
	"github.com/beanhaus/coffeepos/internal/config"
)

func main() {
	config.MustInit()
	app.MustNewApp().Run()
}
