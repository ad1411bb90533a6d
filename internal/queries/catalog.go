// Package queries holds the registry of diagnostic SQL run against the
// telemetry warehouse.
//
// Queries are static strings keyed by a stable identifier (principle code
// plus a measure-analysis suffix, e.g. "CO-01-01-table-formats"). There is
// no SQL generation anywhere — the catalog is the single source of query
// text for the analysis tools.
package queries

import "sync"

// Catalog maps query keys to SQL text. It is seeded at construction and
// safe for concurrent use.
type Catalog struct {
	mu      sync.RWMutex
	queries map[string]string
}

// NewCatalog returns a catalog seeded with the built-in diagnostic queries.
func NewCatalog() *Catalog {
	c := &Catalog{queries: make(map[string]string, len(builtin))}
	for k, v := range builtin {
		c.queries[k] = v
	}
	return c
}

// Get returns the SQL for a key. The second return is false for unknown
// keys — an unknown key is not an error.
func (c *Catalog) Get(key string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	q, ok := c.queries[key]
	return q, ok
}

// Put inserts or overwrites a query.
func (c *Catalog) Put(key, query string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.queries[key] = query
}

// List returns a copy of the full mapping. Mutating the returned map does
// not affect the catalog.
func (c *Catalog) List() map[string]string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make(map[string]string, len(c.queries))
	for k, v := range c.queries {
		out[k] = v
	}
	return out
}

// builtin is the fixed set of diagnostic queries over the warehouse's
// system tables. Keys follow <principle>-<measure>[-<suffix>].
var builtin = map[string]string{
	"CO-01-01-table-formats": `
		SELECT
		    data_source_format AS tables_format,
		    count(data_source_format) AS no_of_tables
		FROM system.information_schema.tables
		GROUP BY ALL
		ORDER BY no_of_tables DESC;
	`,

	"CO-01-01-managed-tables": `
		SELECT
		    table_type,
		    round(count(table_type)/(SELECT count(*) FROM system.information_schema.tables) * 100) AS percent_of_tables
		FROM system.information_schema.tables
		GROUP BY ALL
		HAVING percent_of_tables > 0
		ORDER BY percent_of_tables DESC;
	`,

	"CO-01-02": `
		WITH clusters AS (
		    SELECT
		        *,
		        ROW_NUMBER() OVER(PARTITION BY workspace_id, cluster_id ORDER BY change_time DESC) AS rn
		    FROM system.compute.clusters
		    WHERE cluster_source = 'UI' OR cluster_source = 'API'
		    QUALIFY rn = 1
		),
		job_tasks_exploded AS (
		    SELECT
		        workspace_id,
		        job_id,
		        EXPLODE(compute_ids) AS cluster_id
		    FROM system.lakeflow.job_task_run_timeline
		    WHERE period_start_time >= CURRENT_DATE() - INTERVAL 30 DAY
		    GROUP BY ALL
		),
		all_purpose_cluster_jobs AS (
		    SELECT
		        t1.*,
		        t2.cluster_name,
		        t2.owned_by
		    FROM job_tasks_exploded t1
		        INNER JOIN clusters t2 USING (workspace_id, cluster_id)
		)
		SELECT * FROM all_purpose_cluster_jobs LIMIT 10;
	`,

	"CO-01-03": `
		SELECT billing_origin_product, sum(usage_quantity) AS dbu
		FROM system.billing.usage
		WHERE billing_origin_product IN ('SQL','ALL_PURPOSE')
		  AND usage_date >= current_date() - INTERVAL 30 DAYS
		GROUP BY billing_origin_product;
	`,

	"CO-01-04": `
		SELECT regexp_extract(dbr_version, '^(\\d+\\.\\d+)', 1) AS version, count(*) AS count
		FROM system.compute.clusters
		WHERE NOT contains(dbr_version, 'custom')
		  AND cluster_source NOT IN ('PIPELINE','PIPELINE_MAINTENANCE')
		  AND delete_time IS NULL
		GROUP BY 1
		ORDER BY count DESC;
	`,

	"CO-01-06-serverless": `
		WITH serverless AS (
		    SELECT sum(usage_quantity) AS dbu
		    FROM system.billing.usage u
		    WHERE contains(u.sku_name, 'SERVERLESS')
		      AND u.billing_origin_product IN ('ALL_PURPOSE','SQL','JOBS','DLT','INTERACTIVE')
		      AND date_diff(day, u.usage_start_time, now()) < 28
		),
		total AS (
		    SELECT sum(usage_quantity) AS dbu
		    FROM system.billing.usage u
		    WHERE u.billing_origin_product IN ('ALL_PURPOSE','SQL','JOBS','DLT','INTERACTIVE')
		      AND date_diff(day, u.usage_start_time, now()) < 28
		)
		SELECT serverless.dbu * 100 / total.dbu AS serverless_dbu_percent
		FROM serverless
		CROSS JOIN total;
	`,

	"CO-01-06-sql": `
		SELECT
		CASE
		  WHEN t1.sku_name LIKE '%SERVERLESS_SQL%' THEN 'SQL_SERVERLESS'
		  WHEN t1.sku_name LIKE '%ENTERPRISE_SQL_COMPUTE%' THEN 'SQL_CLASSIC'
		  WHEN t1.sku_name LIKE '%SQL_PRO%' THEN 'SQL_PRO'
		  ELSE 'Other'
		END AS sql_sku_name,
		SUM(t1.usage_quantity * list_prices.pricing.default) AS list_cost
		FROM system.billing.usage t1
		INNER JOIN system.billing.list_prices
		  ON t1.cloud = list_prices.cloud
		  AND t1.sku_name = list_prices.sku_name
		  AND t1.usage_start_time >= list_prices.price_start_time
		  AND (t1.usage_end_time <= list_prices.price_end_time OR list_prices.price_end_time IS NULL)
		WHERE t1.sku_name LIKE '%SQL%'
		  AND t1.usage_date >= current_date() - INTERVAL 30 DAYS
		GROUP BY ALL;
	`,

	"CO-01-08": `
		WITH per_cluster_daily AS (
		  SELECT
		    cluster_id,
		    DATE_TRUNC('DAY', start_time) AS day,
		    AVG(cpu_user_percent + cpu_system_percent) AS avg_cpu_usage_percent,
		    AVG(mem_used_percent) AS avg_memory_usage_percent
		  FROM system.compute.node_timeline
		  WHERE start_time >= CURRENT_DATE - INTERVAL 28 DAYS
		  GROUP BY cluster_id, DATE_TRUNC('DAY', start_time)
		)
		SELECT
		  percentile(avg_cpu_usage_percent, 0.75) AS cpu_usage_percent_p75,
		  percentile(avg_memory_usage_percent, 0.75) AS memory_usage_percent_p75
		FROM per_cluster_daily
		GROUP BY ALL;
	`,

	"CO-02-01": `
		WITH autoscaling_count AS (
		  SELECT count(*) AS autoscaling_count
		  FROM system.compute.clusters
		  WHERE max_autoscale_workers IS NOT NULL
		    AND delete_time IS NULL
		),
		total_clusters_count AS (
		  SELECT count(*) AS total_clusters_count
		  FROM system.compute.clusters
		  WHERE delete_time IS NULL
		)
		SELECT autoscaling_count.autoscaling_count * 100 / total_clusters_count.total_clusters_count AS autoscaling_percent
		FROM total_clusters_count
		CROSS JOIN autoscaling_count;
	`,

	"CO-02-02": `
		SELECT percentile(c.auto_termination_minutes, 0.75) AS p_75_auto_termination_minutes,
		       max(c.auto_termination_minutes) AS max_auto_termination_minutes,
		       count_if(c.auto_termination_minutes IS NULL) AS count_clusters_without_autoterminations,
		       count_if(c.auto_termination_minutes IS NOT NULL) AS count_clusters_with_autoterminations,
		       (count_clusters_without_autoterminations*100)/count(*) AS percent_clusters_without_autoterminations
		FROM system.compute.clusters c
		WHERE c.cluster_source IN ('UI','API')
		  AND c.delete_time IS NULL;
	`,

	"CO-03-01": `
		SELECT
		  event_date,
		  count(*) AS usage_read
		FROM system.access.audit
		WHERE service_name = 'unityCatalog'
		  AND action_name = 'getTable'
		  AND request_params.full_name_arg = 'system.billing.usage'
		  AND user_identity.email != 'System-User'
		  AND (date_diff(day, event_date, current_date()) <= 90)
		GROUP BY event_date
		ORDER BY event_date;
	`,

	"CO-03-02-tagging": `
		SELECT array_size(map_entries(tags)) AS number_of_tags, count(*) AS count
		FROM system.compute.clusters
		WHERE tags.ResourceClass IS NULL
		  AND delete_time IS NULL
		GROUP BY number_of_tags
		ORDER BY count DESC, number_of_tags DESC;
	`,

	"CO-03-02-popular": `
		WITH tag_counts AS (
		  SELECT explode(map_keys(tags)) AS tag, count(*) AS count
		  FROM system.compute.clusters
		  GROUP BY 1
		),
		cluster_count AS (SELECT count(*) AS count FROM system.compute.clusters)
		SELECT tag_counts.tag,
		       sum(tag_counts.count) / any_value(cluster_count.count) * 100 AS percent
		FROM tag_counts
		CROSS JOIN cluster_count
		GROUP BY tag_counts.tag
		ORDER BY percent DESC;
	`,
}
