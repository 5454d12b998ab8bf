package serde

// Property keys, these mirror Hive's serdeConstants and what the metastore writes into a table's schema properties.
const (
	SerializationLib         = "serialization.lib"
	ListColumns              = "columns"
	ListColumnTypes          = "columns.types"
	ListColumnComments       = "columns.comments"
	ColumnNameDelimiter      = "columns.name.delimiter"
	ListPartitionColumns     = "partition_columns"
	ListPartitionColumnTypes = "partition_columns.types"
	MetaTableName            = "name"
	MetaTableLocation        = "location"
	FileInputFormat          = "file.inputformat"
	FileOutputFormat         = "file.outputformat"
	BucketCount              = "bucket_count"

	RegexInput           = "input.regex"
	RegexCaseInsensitive = "input.regex.case.insensitive"

	AvroSchemaLiteral = "avro.schema.literal"
	AvroSchemaURL     = "avro.schema.url"
)

const (
	ColumnCommentsDelimiter   = "\x00"
	ColumnTypesDelimiter      = ":"
	PartitionColumnsDelimiter = "/"

	defaultColumnNameDelimiter = ","
	avroSchemaNone             = "none"
)

// Deserializer identifiers that are registered by [NewDefaultRegistry].
const (
	LazySimpleSerDe             = "org.apache.hadoop.hive.serde2.lazy.LazySimpleSerDe"
	ColumnarSerDe               = "org.apache.hadoop.hive.serde2.columnar.ColumnarSerDe"
	LazyBinaryColumnarSerDe     = "org.apache.hadoop.hive.serde2.columnar.LazyBinaryColumnarSerDe"
	LazyBinarySerDe             = "org.apache.hadoop.hive.serde2.lazybinary.LazyBinarySerDe"
	OrcSerDe                    = "org.apache.hadoop.hive.ql.io.orc.OrcSerde"
	ParquetHiveSerDe            = "org.apache.hadoop.hive.ql.io.parquet.serde.ParquetHiveSerDe"
	HCatalogJSONSerDe           = "org.apache.hive.hcatalog.data.JsonSerDe"
	JSONSerDe                   = "org.apache.hadoop.hive.serde2.JsonSerDe"
	OpenCSVSerDe                = "org.apache.hadoop.hive.serde2.OpenCSVSerde"
	MetadataTypedColumnsetSerDe = "org.apache.hadoop.hive.serde2.MetadataTypedColumnsetSerDe"
	RegexSerDe                  = "org.apache.hadoop.hive.serde2.RegexSerDe"
	AvroSerDe                   = "org.apache.hadoop.hive.serde2.avro.AvroSerDe"

	// CDHParquetHiveSerDe is what CDH calls [ParquetHiveSerDe].
	CDHParquetHiveSerDe = "parquet.hive.serde.ParquetHiveSerDe"
)
