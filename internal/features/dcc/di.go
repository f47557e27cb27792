package dcc

var registry = NewRegistry()

var dccController = &DCCController{
	registry: registry,
}

func init() {
	registry.Register(MayaPlugin{})
	registry.Register(BlenderPlugin{})
	registry.Register(HoudiniPlugin{})
}

func GetRegistry() *Registry {
	return registry
}

func GetDCCController() *DCCController {
	return dccController
}
