package app

import (
	"net/http"

	"github.com/km-arc/go-summer/framework/config"
	"github.com/km-arc/go-summer/framework/container"
	gohttp "github.com/km-arc/go-summer/framework/http"
	"github.com/km-arc/go-summer/framework/routing"
)

// Controller serves the demo endpoints. Services are resolved per request so
// transient bindings are rebuilt and singletons are shared.
type Controller struct {
	res *container.Resolver
	cfg *config.Config
}

// Home handles GET /.
func (c *Controller) Home(w http.ResponseWriter, r *http.Request) {
	gohttp.NewResponse(w).Success(map[string]any{
		"app":      c.cfg.App.Name,
		"env":      c.cfg.App.Env,
		"bindings": c.res.Registry().Len(),
	})
}

// Greet handles GET /greet/{name}.
func (c *Controller) Greet(w http.ResponseWriter, r *http.Request) {
	res := gohttp.NewResponse(w)
	greeter, err := container.Resolve[*Greeter](c.res)
	if err != nil {
		res.ServerError(err.Error())
		return
	}
	res.Success(greeter.Greet(routing.Param(r, "name")))
}

// Notify handles GET /notify/{message}, delivering to every Notifier binding
// in registration order.
func (c *Controller) Notify(w http.ResponseWriter, r *http.Request) {
	res := gohttp.NewResponse(w)
	notifiers, err := container.ResolveAll[Notifier](c.res)
	if err != nil {
		res.ServerError(err.Error())
		return
	}

	message := routing.Param(r, "message")
	delivered := make([]string, 0, len(notifiers))
	for _, n := range notifiers {
		if err := n.Notify(message); err != nil {
			res.ServerError(err.Error())
			return
		}
		delivered = append(delivered, n.Name())
	}
	res.Success(map[string]any{"message": message, "delivered": delivered})
}

// Container handles GET /container with a snapshot of every binding.
func (c *Controller) Container(w http.ResponseWriter, r *http.Request) {
	gohttp.NewResponse(w).Success(container.Describe(c.res.Registry()))
}
