package system_healthcheck

var healthcheckService = &HealthcheckService{
	diskPath: "/",
}
var healthcheckController = &HealthcheckController{
	healthcheckService,
}

func GetHealthcheckController() *HealthcheckController {
	return healthcheckController
}
