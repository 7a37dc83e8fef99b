// Package coordex provides an embedded Go client for the coordex location
// store backed by Redis, plus direct access to the coordinate geometry.
//
// # Geometry
//
//	client, _ := coordex.New(ctx, coordex.WithRedis("localhost:6379", ""))
//	a, _ := geo.NewCartesian(1, 0, 0)
//	b, _ := geo.NewSpherical(1, math.Pi/2, math.Pi/2)
//	d, _ := client.Geometry().Distance(ctx, a, b)
//
// # Locations
//
//	client, _ := coordex.New(ctx,
//	    coordex.WithRedis("localhost:6379", ""),
//	    coordex.WithCategories(map[string]string{"place": "", "city": "place"}),
//	)
//	_, _, _ = client.Locations().Upsert(ctx, coordex.Location{
//	    ID: "berlin", Category: "city", Coordinate: p,
//	})
//	near, _ := client.Locations().Nearby(ctx, origin,
//	    coordex.InCategory("place"), coordex.Limit(5))
package coordex
