package decoder

import "github.com/mewkiz/bufr/descriptor"

// startReplication handles a resolved Replication descriptor: a fixed
// replication's count is its own Y; a delayed replication (Y=0) reads its
// count off the bitstream first, using the bit width descriptor.Resolve
// already determined by inspecting the descriptor that follows it.
func (dr *DataReader) startReplication(c descriptor.ResolvedDescriptor) (DataEvent, error) {
	count := uint32(c.ReplY)
	if c.ReplY == 0 {
		n, err := dr.br.Read(uint(c.ReplDelayBits))
		if err != nil {
			return DataEvent{}, WrapIO(err)
		}
		count = n
	}
	dr.stack = append(dr.stack, newReplicationFrame(c.ReplChildren, count))
	return DataEvent{Kind: EventReplicationStart, ReplicationCount: count}, nil
}
