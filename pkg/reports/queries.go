// Package reports runs the read-only aggregation queries and renders their
// results. All queries are pure reads with no side effects on the graph.
package reports

// Aggregation queries, grouped by dimension.
const (
	QuerySalesByRegion = `
MATCH (o:Order)-[:SHIPPED_TO]->(r:Region)
RETURN r.name AS region,
       sum(o.sales) AS total_sales,
       avg(o.profit) AS avg_profit,
       count(o) AS orders
ORDER BY total_sales DESC`

	QueryReturnRateByShipMode = `
MATCH (o:Order)
RETURN o.shipMode AS ship_mode,
       count(o) AS orders,
       sum(CASE WHEN o.returned THEN 1 ELSE 0 END) AS returned,
       toFloat(sum(CASE WHEN o.returned THEN 1 ELSE 0 END)) / count(o) AS return_rate
ORDER BY return_rate DESC`

	QueryTopCustomersBySales = `
MATCH (c:Customer)-[:PLACED]->(o:Order)
RETURN c.id AS customer_id,
       c.name AS customer,
       sum(o.sales) AS total_sales,
       count(o) AS orders
ORDER BY total_sales DESC
LIMIT 10`

	QueryOrdersBySegment = `
MATCH (c:Customer)-[:PLACED]->(o:Order)
RETURN c.segment AS segment,
       count(o) AS orders,
       avg(o.discount) AS avg_discount
ORDER BY orders DESC`

	QueryTopProductsByRank = `
MATCH (p:Product)
WHERE p.pagerank IS NOT NULL
RETURN p.id AS product_id,
       p.name AS product,
       p.category AS category,
       p.pagerank AS score
ORDER BY score DESC
LIMIT 10`

	QueryTopClustersBySize = `
MATCH (p:Product)
WHERE p.communityId IS NOT NULL
RETURN p.communityId AS cluster,
       count(p) AS size
ORDER BY size DESC
LIMIT 10`
)
