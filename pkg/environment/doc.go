// Package environment names the deployment environment the storefront runs in
// and carries it through request contexts and log records.
//
// Parse accepts the common short forms ("dev", "prod", "stage"):
//
//	env := environment.Parse(os.Getenv("APP_ENV"))
//	router.Use(environment.Middleware(env))
//
//	if environment.FromContext(ctx).IsProduction() {
//		// hide error details
//	}
package environment
