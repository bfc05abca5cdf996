// Package loader registers the HTTP features of the API server.
//
// A feature implements Feature; the Manager loads the enabled ones onto a
// fiber.Router in registration order:
//
//	mgr := loader.NewManager(logg)
//	mgr.Register(diff.NewFeature(src, logg))
//	if err := mgr.LoadAll(app); err != nil {
//	    return err
//	}
package loader
