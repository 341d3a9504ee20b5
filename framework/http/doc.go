// Package http provides Laravel-style JSON response helpers.
//
//	res := gohttp.NewResponse(w)
//	res.Success(map[string]any{"id": 1}) // 200 {"data": {"id": 1}}
//	res.NotFound()                       // 404 {"message": "Not found."}
//	res.Error(http.StatusConflict, "taken")
package http
